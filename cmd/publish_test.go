package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublish_PrimaryBranch(t *testing.T) {
	dir, repo := initTestRepo(t)
	writeFile(t, dir, "app.py", "print('v1')\n")
	commitAll(t, repo, "initial")
	addBareRemote(t, repo, "origin")

	gc := GitConfig{Remote: "origin", PrimaryBranch: "master", FallbackBranch: "main"}
	require.NoError(t, publish(dir, gc, ""))
}

func TestPublish_FallbackBranch(t *testing.T) {
	dir, repo := initTestRepo(t)
	writeFile(t, dir, "app.py", "print('v1')\n")
	commitAll(t, repo, "initial")
	addBareRemote(t, repo, "origin")

	// The local branch is master, so the primary refspec has nothing to push
	// and the fallback must carry the run.
	gc := GitConfig{Remote: "origin", PrimaryBranch: "main", FallbackBranch: "master"}
	require.NoError(t, publish(dir, gc, ""))
}

func TestPublish_AlreadyUpToDate(t *testing.T) {
	dir, repo := initTestRepo(t)
	writeFile(t, dir, "app.py", "print('v1')\n")
	commitAll(t, repo, "initial")
	addBareRemote(t, repo, "origin")

	gc := GitConfig{Remote: "origin", PrimaryBranch: "master", FallbackBranch: "main"}
	require.NoError(t, publish(dir, gc, ""))
	require.NoError(t, publish(dir, gc, ""))
}

func TestPublish_BothBranchesFail(t *testing.T) {
	dir, repo := initTestRepo(t)
	writeFile(t, dir, "app.py", "print('v1')\n")
	commitAll(t, repo, "initial")
	addBareRemote(t, repo, "origin")

	gc := GitConfig{Remote: "origin", PrimaryBranch: "main", FallbackBranch: "trunk"}
	err := publish(dir, gc, "")
	require.Error(t, err)
	require.ErrorIs(t, err, errPublishFailed)
}

func TestPublish_RemoteNotRegistered(t *testing.T) {
	dir, repo := initTestRepo(t)
	writeFile(t, dir, "app.py", "print('v1')\n")
	commitAll(t, repo, "initial")

	gc := GitConfig{Remote: "origin", PrimaryBranch: "master", FallbackBranch: "main"}
	err := publish(dir, gc, "")
	require.Error(t, err)
	require.ErrorIs(t, err, errPublishFailed)
	require.Contains(t, err.Error(), "not registered")
}

func TestPublishAuth_NonSSHRemote(t *testing.T) {
	auth, err := publishAuth([]string{"/srv/git/arc.git"}, "/keys/deploy")
	require.NoError(t, err)
	require.Nil(t, auth)

	auth, err = publishAuth([]string{"https://example.com/arc.git"}, "/keys/deploy")
	require.NoError(t, err)
	require.Nil(t, auth)
}

func TestPublishAuth_SSHRemoteBadKey(t *testing.T) {
	_, err := publishAuth([]string{"git@example.com:ops/arc.git"}, "/nonexistent/key")
	require.Error(t, err)
}
