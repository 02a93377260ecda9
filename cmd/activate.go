package cmd

import (
	"fmt"
	"strings"
)

// activate runs the whole activation plan in one remote session and checks
// that the service came back active. A dropped session or an inactive probe
// wraps errActivationIncomplete; the caller downgrades that to a warning
// since the files are already in place.
func activate(client sessionClient, cfg *Config, ts transferSet) error {
	script := renderActivationScript(buildActivationPlan(cfg, ts))
	timeout := cfg.Timeouts.command() + cfg.Timeouts.restartGrace()
	out, code, err := runRemoteCommandFunc(client, script, timeout)
	if err != nil {
		return fmt.Errorf("%w: remote session: %v", errActivationIncomplete, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: remote script exited %d", errActivationIncomplete, code)
	}
	if state := parseServiceState(out); state != "active" {
		return fmt.Errorf("%w: service %s reports %q", errActivationIncomplete, cfg.Remote.Service, state)
	}
	return nil
}

// parseServiceState extracts the is-active answer, the last non-empty line
// of the session output.
func parseServiceState(out []byte) string {
	lines := strings.Split(string(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			return s
		}
	}
	return "unknown"
}
