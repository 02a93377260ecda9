package cmd

import (
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// publish pushes to the configured remote, trying the primary branch first
// and the fallback second. Both failing wraps errPublishFailed so the
// summary can print remote-registration guidance. A commit made earlier in
// the run is left in place either way.
func publish(repoPath string, gc GitConfig, keyPath string) error {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	remote, err := repo.Remote(gc.Remote)
	if err != nil {
		return fmt.Errorf("%w: remote %q not registered: %v", errPublishFailed, gc.Remote, err)
	}
	auth, err := publishAuth(remote.Config().URLs, keyPath)
	if err != nil {
		return fmt.Errorf("%w: %v", errPublishFailed, err)
	}

	var attempts []string
	for _, branch := range []string{gc.PrimaryBranch, gc.FallbackBranch} {
		if branch == "" {
			continue
		}
		spec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
		err = repo.Push(&git.PushOptions{
			RemoteName: gc.Remote,
			RefSpecs:   []gitconfig.RefSpec{spec},
			Auth:       auth,
		})
		if err == nil || errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: %v", branch, err))
	}
	return fmt.Errorf("%w: %s", errPublishFailed, strings.Join(attempts, "; "))
}

// publishAuth builds key auth for SSH-style remote URLs; other transports
// use whatever ambient credentials git would.
func publishAuth(urls []string, keyPath string) (transport.AuthMethod, error) {
	if keyPath == "" || len(urls) == 0 {
		return nil, nil
	}
	u := urls[0]
	if !strings.HasPrefix(u, "ssh://") && !strings.Contains(u, "@") {
		return nil, nil
	}
	keys, err := gitssh.NewPublicKeysFromFile("git", keyPath, "")
	if err != nil {
		return nil, fmt.Errorf("load push key: %w", err)
	}
	return keys, nil
}
