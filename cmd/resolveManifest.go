package cmd

import (
	"os"
	"path/filepath"
)

// transferSet is the subset of the configured manifest that exists in the
// local working tree.
type transferSet struct {
	RootFiles  []string
	PackageDir string // empty when the directory is absent locally
}

// resolveManifest checks the configured manifest against the working tree.
// Absent root files are skipped silently; the package directory is included
// only when it is present and is a directory.
func resolveManifest(localDir string, mc ManifestConfig) transferSet {
	var ts transferSet
	for _, name := range mc.RootFiles {
		info, err := os.Stat(filepath.Join(localDir, name))
		if err != nil || info.IsDir() {
			continue
		}
		ts.RootFiles = append(ts.RootFiles, name)
	}
	if mc.PackageDir != "" {
		if info, err := os.Stat(filepath.Join(localDir, mc.PackageDir)); err == nil && info.IsDir() {
			ts.PackageDir = mc.PackageDir
		}
	}
	return ts
}

func (ts transferSet) empty() bool {
	return len(ts.RootFiles) == 0 && ts.PackageDir == ""
}
