package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// pipeline drives the five deployment stages in order: fail-fast, no
// retries, no rollback. Only the activation stage may downgrade its failure
// to a warning.
type pipeline struct {
	cfg       *Config
	repoPath  string
	msgArg    string
	assumeYes bool
	log       zerolog.Logger
	out       io.Writer
}

func (p *pipeline) run() *runReport {
	rep := &runReport{}

	if err := preflight(p.cfg.Target.KeyPath); err != nil {
		p.record(rep, stageResult{Name: stagePreflight, Status: stageFailed, Err: err})
		return rep
	}
	p.record(rep, stageResult{Name: stagePreflight, Status: stageSuccess, Detail: "deploy key present"})

	committed, msg, err := commitIfDirty(p.repoPath, p.msgArg, p.assumeYes, p.cfg.Commit.DefaultMessage)
	if err != nil {
		p.record(rep, stageResult{Name: stageCommit, Status: stageFailed, Err: err})
		return rep
	}
	if committed {
		p.record(rep, stageResult{Name: stageCommit, Status: stageSuccess, Detail: "committed: " + msg})
	} else {
		p.record(rep, stageResult{Name: stageCommit, Status: stageSkipped, Detail: "working tree clean"})
	}

	if err := publish(p.repoPath, p.cfg.Git, p.cfg.Target.KeyPath); err != nil {
		p.record(rep, stageResult{Name: stagePublish, Status: stageFailed, Err: err})
		return rep
	}
	p.record(rep, stageResult{Name: stagePublish, Status: stageSuccess, Detail: "pushed to " + p.cfg.Git.Remote})

	client, err := dialSSHFunc(p.cfg.Target.Host, p.cfg.Target.User, p.cfg.Target.KeyPath,
		p.cfg.Target.KnownHosts, p.cfg.Target.StrictHostKey, p.cfg.Timeouts.connect())
	if err != nil {
		p.record(rep, stageResult{Name: stageTransfer, Status: stageFailed,
			Err: fmt.Errorf("%w: ssh connection: %v", errTransferFailed, err)})
		return rep
	}
	defer func() {
		if client != nil {
			_ = client.Close()
		}
	}()

	ts := resolveManifest(p.repoPath, p.cfg.Manifest)
	if ts.empty() {
		p.record(rep, stageResult{Name: stageTransfer, Status: stageSkipped, Detail: "no manifest entries present locally"})
	} else {
		up, err := newUploaderFunc(client)
		if err != nil {
			p.record(rep, stageResult{Name: stageTransfer, Status: stageFailed,
				Err: fmt.Errorf("%w: %v", errTransferFailed, err)})
			return rep
		}
		err = transferArtifacts(up, p.repoPath, p.cfg.Remote.StagingDir, ts)
		_ = up.Close()
		if err != nil {
			p.record(rep, stageResult{Name: stageTransfer, Status: stageFailed, Err: err})
			return rep
		}
		detail := fmt.Sprintf("%d root file(s)", len(ts.RootFiles))
		if ts.PackageDir != "" {
			detail += ", package " + ts.PackageDir
		}
		p.record(rep, stageResult{Name: stageTransfer, Status: stageSuccess, Detail: detail})
	}

	if err := activate(sshClientWrapper{client}, p.cfg, ts); err != nil {
		p.record(rep, stageResult{Name: stageActivate, Status: stageWarning, Err: err})
	} else {
		p.record(rep, stageResult{Name: stageActivate, Status: stageSuccess,
			Detail: "service " + p.cfg.Remote.Service + " active"})
	}
	return rep
}

// record appends the result, prints the styled console line and logs it.
func (p *pipeline) record(rep *runReport, res stageResult) {
	rep.add(res)
	_, _ = fmt.Fprintln(p.out, renderStageLine(res))

	ev := p.log.Info()
	switch res.Status {
	case stageFailed:
		ev = p.log.Error()
	case stageWarning:
		ev = p.log.Warn()
	case stageSkipped:
		ev = p.log.Debug()
	}
	ev = ev.Str("stage", res.Name).Str("status", res.Status.String())
	if res.Detail != "" {
		ev = ev.Str("detail", res.Detail)
	}
	if res.Err != nil {
		ev = ev.Err(res.Err)
	}
	ev.Msg("stage finished")
}
