// Package cmd implements the arc-deploy release pipeline: preflight the
// deploy key, commit local changes, push to the configured remote, upload
// the deployment manifest to the target host over SFTP, and activate the
// new release in a single remote session.
package cmd
