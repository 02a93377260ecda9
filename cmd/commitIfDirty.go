package cmd

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// commitIfDirty stages and commits all local changes. A clean tree commits
// nothing and reports committed=false. Message precedence: the caller's
// argument, then the interactive prompt, then defaultMsg.
func commitIfDirty(repoPath, msgArg string, assumeYes bool, defaultMsg string) (committed bool, message string, err error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return false, "", fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return false, "", fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, "", fmt.Errorf("status: %w", err)
	}
	if status.IsClean() {
		return false, "", nil
	}

	message = strings.TrimSpace(msgArg)
	if message == "" && !assumeYes {
		answer, perr := promptFunc()
		if perr != nil {
			return false, "", fmt.Errorf("read commit message: %w", perr)
		}
		message = strings.TrimSpace(answer)
	}
	if message == "" {
		message = defaultMsg
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, "", fmt.Errorf("stage changes: %w", err)
	}
	if _, err := wt.Commit(message, &git.CommitOptions{}); err != nil {
		return false, "", fmt.Errorf("commit: %w", err)
	}
	return true, message, nil
}
