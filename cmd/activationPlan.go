package cmd

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// remoteOp is one step of the activation sequence, kept as data so the plan
// can be inspected and unit-tested before it is rendered to a script.
type remoteOp struct {
	Desc string
	Cmd  string
}

// buildActivationPlan orders the remote swap: staged root files move into
// the live directory, the package directory replaces the previous copy,
// legacy entry points are removed, the unit file is rewritten if it still
// names the legacy entry point, and the service is restarted and probed.
func buildActivationPlan(cfg *Config, ts transferSet) []remoteOp {
	rc := cfg.Remote
	var ops []remoteOp

	for _, name := range ts.RootFiles {
		staged := shellQuote(path.Join(rc.StagingDir, name))
		live := shellQuote(path.Join(rc.AppDir, name))
		ops = append(ops,
			remoteOp{Desc: "install " + name, Cmd: fmt.Sprintf("mv %s %s", staged, live)},
			remoteOp{Desc: "own " + name, Cmd: fmt.Sprintf("chown %s %s", shellQuote(rc.Owner), live)},
		)
	}

	if ts.PackageDir != "" {
		staged := shellQuote(path.Join(rc.StagingDir, ts.PackageDir))
		live := shellQuote(path.Join(rc.AppDir, ts.PackageDir))
		ops = append(ops,
			remoteOp{Desc: "drop previous " + ts.PackageDir, Cmd: "rm -rf " + live},
			remoteOp{Desc: "install " + ts.PackageDir, Cmd: fmt.Sprintf("mv %s %s", staged, live)},
			remoteOp{Desc: "own " + ts.PackageDir, Cmd: fmt.Sprintf("chown -R %s %s", shellQuote(rc.Owner), live)},
		)
	}

	for _, legacy := range rc.LegacyEntryPoints {
		ops = append(ops, remoteOp{
			Desc: "remove legacy " + legacy,
			Cmd:  "rm -f " + shellQuote(path.Join(rc.AppDir, legacy)),
		})
	}

	if rc.UnitFile != "" && rc.LegacyEntry != "" && rc.CurrentEntry != "" {
		unit := shellQuote(rc.UnitFile)
		expr := shellQuote(fmt.Sprintf("s|%s|%s|g", rc.LegacyEntry, rc.CurrentEntry))
		ops = append(ops, remoteOp{
			Desc: "rewrite unit entry point",
			Cmd: fmt.Sprintf("if grep -q %s %s; then sed -i %s %s; systemctl daemon-reload; fi",
				shellQuote(rc.LegacyEntry), unit, expr, unit),
		})
	}

	grace := int(cfg.Timeouts.restartGrace().Round(time.Second) / time.Second)
	if grace < 1 {
		grace = 1
	}
	ops = append(ops,
		remoteOp{Desc: "restart " + rc.Service, Cmd: "systemctl restart " + shellQuote(rc.Service)},
		remoteOp{Desc: "grace wait", Cmd: fmt.Sprintf("sleep %d", grace)},
		remoteOp{Desc: "probe " + rc.Service, Cmd: fmt.Sprintf("systemctl is-active %s || true", shellQuote(rc.Service))},
	)
	return ops
}

// renderActivationScript joins the plan into the single script run over one
// remote session. set -e keeps the fail-fast contract on the remote side;
// the is-active probe is exempt so an inactive service surfaces as output,
// not as a script failure.
func renderActivationScript(ops []remoteOp) string {
	lines := make([]string, 0, len(ops)+1)
	lines = append(lines, "set -e")
	for _, op := range ops {
		lines = append(lines, op.Cmd)
	}
	return strings.Join(lines, "\n")
}
