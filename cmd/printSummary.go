package cmd

import (
	"errors"
	"fmt"
	"io"
)

// printSummary writes the final outcome plus remediation hints for the two
// most common failures and follow-up diagnostics otherwise.
func printSummary(w io.Writer, rep *runReport, cfg *Config) {
	if ab := rep.aborted(); ab != nil {
		_, _ = fmt.Fprintln(w, failStyle.Render("deploy aborted")+" at stage "+ab.Name)
		switch {
		case errors.Is(ab.Err, errMissingCredential):
			_, _ = fmt.Fprintln(w, hintStyle.Render("hint:")+" place the deploy key at "+cfg.Target.KeyPath+" or point target.key at it")
		case errors.Is(ab.Err, errPublishFailed):
			_, _ = fmt.Fprintln(w, hintStyle.Render("hint:")+" register the remote first: git remote add "+cfg.Git.Remote+" "+cfg.Git.RemoteURL)
			_, _ = fmt.Fprintln(w, hintStyle.Render("hint:")+" any commit made this run is kept; re-run once the remote accepts pushes")
		}
		return
	}
	if rep.warned() {
		_, _ = fmt.Fprintln(w, warnStyle.Render("deploy completed with warnings"))
		_, _ = fmt.Fprintln(w, hintStyle.Render("hint:")+" inspect remote logs: journalctl -u "+cfg.Remote.Service+" -n 50")
		return
	}
	_, _ = fmt.Fprintln(w, okStyle.Render("deploy complete"))
	_, _ = fmt.Fprintln(w, "follow-up: systemctl status "+cfg.Remote.Service)
	_, _ = fmt.Fprintln(w, "follow-up: journalctl -u "+cfg.Remote.Service+" -f")
}
