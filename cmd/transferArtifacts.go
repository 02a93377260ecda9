package cmd

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
)

// transferArtifacts copies every resolved manifest entry into the remote
// staging directory. Root files are attempted independently so one failure
// does not shadow the rest; any failure still fails the stage.
func transferArtifacts(up uploader, localDir, stagingDir string, ts transferSet) error {
	var failures []error
	for _, name := range ts.RootFiles {
		local := filepath.Join(localDir, name)
		remote := path.Join(stagingDir, name)
		if err := up.PutFile(local, remote); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", name, err))
		}
	}
	if ts.PackageDir != "" {
		local := filepath.Join(localDir, ts.PackageDir)
		remote := path.Join(stagingDir, ts.PackageDir)
		if err := up.PutDir(local, remote); err != nil {
			failures = append(failures, fmt.Errorf("%s/: %w", ts.PackageDir, err))
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w: %v", errTransferFailed, errors.Join(failures...))
	}
	return nil
}
