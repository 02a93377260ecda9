package cmd

import (
	"fmt"
	"os"
)

// preflight verifies the deploy key exists on disk before any
// version-control or remote action is attempted.
func preflight(keyPath string) error {
	if keyPath == "" {
		return fmt.Errorf("%w: target.key is empty", errMissingCredential)
	}
	if _, err := os.Stat(keyPath); err != nil {
		return fmt.Errorf("%w at %s", errMissingCredential, keyPath)
	}
	return nil
}
