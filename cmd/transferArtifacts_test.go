package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeUploader records transfer attempts and can fail selected remote paths.
type fakeUploader struct {
	files  []string
	dirs   []string
	failOn map[string]error
	closed bool
}

func (f *fakeUploader) PutFile(local, remote string) error {
	f.files = append(f.files, remote)
	if err := f.failOn[remote]; err != nil {
		return err
	}
	return nil
}

func (f *fakeUploader) PutDir(local, remote string) error {
	f.dirs = append(f.dirs, remote)
	if err := f.failOn[remote]; err != nil {
		return err
	}
	return nil
}

func (f *fakeUploader) Close() error { f.closed = true; return nil }

func TestTransferArtifacts_AllEntries(t *testing.T) {
	up := &fakeUploader{}
	ts := transferSet{RootFiles: []string{"app.py", "llm_clients.py"}, PackageDir: "arc"}

	err := transferArtifacts(up, "/local", "/tmp/arc-deploy", ts)
	require.NoError(t, err)
	require.Equal(t, []string{"/tmp/arc-deploy/app.py", "/tmp/arc-deploy/llm_clients.py"}, up.files)
	require.Equal(t, []string{"/tmp/arc-deploy/arc"}, up.dirs)
}

func TestTransferArtifacts_FailureDoesNotBlockOthers(t *testing.T) {
	up := &fakeUploader{failOn: map[string]error{
		"/tmp/arc-deploy/app.py": errors.New("no space"),
	}}
	ts := transferSet{RootFiles: []string{"app.py", "llm_clients.py"}, PackageDir: "arc"}

	err := transferArtifacts(up, "/local", "/tmp/arc-deploy", ts)
	require.Error(t, err)
	require.ErrorIs(t, err, errTransferFailed)
	// Every entry was still attempted.
	require.Len(t, up.files, 2)
	require.Len(t, up.dirs, 1)
}

func TestTransferArtifacts_PackageFailureReported(t *testing.T) {
	up := &fakeUploader{failOn: map[string]error{
		"/tmp/arc-deploy/arc": errors.New("permission denied"),
	}}
	ts := transferSet{RootFiles: []string{"app.py"}, PackageDir: "arc"}

	err := transferArtifacts(up, "/local", "/tmp/arc-deploy", ts)
	require.Error(t, err)
	require.ErrorIs(t, err, errTransferFailed)
	require.Contains(t, err.Error(), "arc/")
}

func TestTransferArtifacts_RootFilesOnly(t *testing.T) {
	up := &fakeUploader{}
	err := transferArtifacts(up, "/local", "/stage", transferSet{RootFiles: []string{"app.py"}})
	require.NoError(t, err)
	require.Empty(t, up.dirs)
}
