package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultConfig mirrors the original deployment layout: app.py plus the arc
// package under /srv/arc, managed by arc.service.
func defaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			User:       "arc",
			KeyPath:    "~/.ssh/arc_deploy",
			KnownHosts: "~/.ssh/known_hosts",
		},
		Remote: RemoteConfig{
			AppDir:            "/srv/arc",
			StagingDir:        "/tmp/arc-deploy",
			Owner:             "arc:arc",
			Service:           "arc.service",
			UnitFile:          "/etc/systemd/system/arc.service",
			LegacyEntryPoints: []string{"arc_app.py", "streamlit_app.py"},
			LegacyEntry:       "arc_app.py",
			CurrentEntry:      "app.py",
		},
		Git: GitConfig{
			Remote:         "origin",
			PrimaryBranch:  "main",
			FallbackBranch: "master",
		},
		Manifest: ManifestConfig{
			RootFiles:  []string{"app.py", "llm_clients.py", "local_config.py", "requirements.txt"},
			PackageDir: "arc",
		},
		Commit: CommitConfig{
			DefaultMessage: "arc deploy",
		},
	}
}

// loadConfig reads the YAML deploy configuration over the defaults. A missing
// file is not an error; the defaults then stand and validation decides
// whether they are usable.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.expandPaths()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.expandPaths()
	return cfg, nil
}

func (c *Config) expandPaths() {
	c.Target.KeyPath = expandHome(c.Target.KeyPath)
	c.Target.KnownHosts = expandHome(c.Target.KnownHosts)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

func parseDurationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
