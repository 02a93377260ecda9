package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func planCommands(ops []remoteOp) []string {
	cmds := make([]string, 0, len(ops))
	for _, op := range ops {
		cmds = append(cmds, op.Cmd)
	}
	return cmds
}

func TestBuildActivationPlan_FullManifest(t *testing.T) {
	cfg := defaultConfig()
	ts := transferSet{RootFiles: []string{"app.py"}, PackageDir: "arc"}

	cmds := planCommands(buildActivationPlan(cfg, ts))
	require.Equal(t, []string{
		"mv /tmp/arc-deploy/app.py /srv/arc/app.py",
		"chown arc:arc /srv/arc/app.py",
		"rm -rf /srv/arc/arc",
		"mv /tmp/arc-deploy/arc /srv/arc/arc",
		"chown -R arc:arc /srv/arc/arc",
		"rm -f /srv/arc/arc_app.py",
		"rm -f /srv/arc/streamlit_app.py",
		"if grep -q arc_app.py /etc/systemd/system/arc.service; then sed -i 's|arc_app.py|app.py|g' /etc/systemd/system/arc.service; systemctl daemon-reload; fi",
		"systemctl restart arc.service",
		"sleep 5",
		"systemctl is-active arc.service || true",
	}, cmds)
}

func TestBuildActivationPlan_NoPackageDir(t *testing.T) {
	cfg := defaultConfig()
	ts := transferSet{RootFiles: []string{"app.py"}}

	cmds := planCommands(buildActivationPlan(cfg, ts))
	joined := strings.Join(cmds, "\n")
	require.NotContains(t, joined, "rm -rf /srv/arc/arc\n")
	require.Contains(t, joined, "systemctl restart arc.service")
}

func TestBuildActivationPlan_GraceFloorsAtOneSecond(t *testing.T) {
	cfg := defaultConfig()
	cfg.Timeouts.RestartGrace = "10ms"
	cmds := planCommands(buildActivationPlan(cfg, transferSet{}))
	require.Contains(t, cmds, "sleep 1")
}

func TestRenderActivationScript_FailFast(t *testing.T) {
	script := renderActivationScript([]remoteOp{
		{Desc: "a", Cmd: "mv x y"},
		{Desc: "b", Cmd: "systemctl restart arc.service"},
	})
	require.True(t, strings.HasPrefix(script, "set -e\n"))
	require.Contains(t, script, "mv x y\nsystemctl restart arc.service")
}

func TestParseServiceState(t *testing.T) {
	require.Equal(t, "active", parseServiceState([]byte("some noise\nactive\n")))
	require.Equal(t, "inactive", parseServiceState([]byte("inactive\n")))
	require.Equal(t, "unknown", parseServiceState(nil))
	require.Equal(t, "unknown", parseServiceState([]byte("\n\n")))
}

func stubRunRemote(t *testing.T, out string, code int, err error) *string {
	t.Helper()
	orig := runRemoteCommandFunc
	t.Cleanup(func() { runRemoteCommandFunc = orig })
	var gotScript string
	runRemoteCommandFunc = func(client sessionClient, cmd string, timeout time.Duration) ([]byte, int, error) {
		gotScript = cmd
		return []byte(out), code, err
	}
	return &gotScript
}

func TestActivate_ServiceActive(t *testing.T) {
	cfg := defaultConfig()
	script := stubRunRemote(t, "active\n", 0, nil)
	err := activate(&fakeClient{}, cfg, transferSet{RootFiles: []string{"app.py"}})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(*script, "set -e\n"))
	require.Contains(t, *script, "systemctl is-active arc.service")
}

func TestActivate_ServiceInactive(t *testing.T) {
	cfg := defaultConfig()
	stubRunRemote(t, "inactive\n", 0, nil)
	err := activate(&fakeClient{}, cfg, transferSet{})
	require.Error(t, err)
	require.ErrorIs(t, err, errActivationIncomplete)
	require.Contains(t, err.Error(), "inactive")
}

func TestActivate_SessionDropped(t *testing.T) {
	cfg := defaultConfig()
	stubRunRemote(t, "", -1, errors.New("connection lost"))
	err := activate(&fakeClient{}, cfg, transferSet{})
	require.Error(t, err)
	require.ErrorIs(t, err, errActivationIncomplete)
}

func TestActivate_ScriptFailed(t *testing.T) {
	cfg := defaultConfig()
	stubRunRemote(t, "mv: cannot stat\n", 1, nil)
	err := activate(&fakeClient{}, cfg, transferSet{})
	require.Error(t, err)
	require.ErrorIs(t, err, errActivationIncomplete)
	require.Contains(t, err.Error(), "exited 1")
}
