package cmd

import "errors"

// Pipeline error taxonomy. Each stage wraps one of these so the driver and
// the summary printer can react without matching on message text.
var (
	errMissingCredential    = errors.New("deploy key not found")
	errPublishFailed        = errors.New("push rejected on all configured branches")
	errTransferFailed       = errors.New("artifact transfer failed")
	errActivationIncomplete = errors.New("activation incomplete")
)
