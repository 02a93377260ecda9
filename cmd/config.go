package cmd

import (
	"errors"
	"time"
)

// TargetConfig identifies the single preconfigured host this tool deploys to.
type TargetConfig struct {
	Host          string `yaml:"host"`
	User          string `yaml:"user"`
	KeyPath       string `yaml:"key"`
	KnownHosts    string `yaml:"known_hosts"`
	StrictHostKey bool   `yaml:"strict_host_key"`
}

// RemoteConfig describes the application layout on the target host.
type RemoteConfig struct {
	AppDir            string   `yaml:"app_dir"`
	StagingDir        string   `yaml:"staging_dir"`
	Owner             string   `yaml:"owner"`
	Service           string   `yaml:"service"`
	UnitFile          string   `yaml:"unit_file"`
	LegacyEntryPoints []string `yaml:"legacy_entry_points"`
	LegacyEntry       string   `yaml:"legacy_entry"`
	CurrentEntry      string   `yaml:"current_entry"`
}

// GitConfig names the remote and the branch pair tried on publish.
type GitConfig struct {
	Remote         string `yaml:"remote"`
	RemoteURL      string `yaml:"remote_url"`
	PrimaryBranch  string `yaml:"primary_branch"`
	FallbackBranch string `yaml:"fallback_branch"`
}

// ManifestConfig is the fixed transfer list: optional root files plus one
// package directory.
type ManifestConfig struct {
	RootFiles  []string `yaml:"root_files"`
	PackageDir string   `yaml:"package_dir"`
}

type CommitConfig struct {
	DefaultMessage string `yaml:"default_message"`
}

// TimeoutConfig carries durations as strings ("15s") so the YAML stays
// human-editable; empty or invalid values fall back to defaults.
type TimeoutConfig struct {
	Connect      string `yaml:"connect"`
	Command      string `yaml:"command"`
	RestartGrace string `yaml:"restart_grace"`
}

func (t TimeoutConfig) connect() time.Duration {
	return parseDurationOr(t.Connect, 15*time.Second)
}

func (t TimeoutConfig) command() time.Duration {
	return parseDurationOr(t.Command, 60*time.Second)
}

func (t TimeoutConfig) restartGrace() time.Duration {
	return parseDurationOr(t.RestartGrace, 5*time.Second)
}

// Config is assembled once at startup and treated as immutable afterwards.
type Config struct {
	Target   TargetConfig   `yaml:"target"`
	Remote   RemoteConfig   `yaml:"remote"`
	Git      GitConfig      `yaml:"git"`
	Manifest ManifestConfig `yaml:"manifest"`
	Commit   CommitConfig   `yaml:"commit"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

func (c *Config) validate() error {
	if c.Target.Host == "" {
		return errors.New("target.host is required")
	}
	if c.Target.User == "" {
		return errors.New("target.user is required")
	}
	if c.Target.KeyPath == "" {
		return errors.New("target.key is required")
	}
	if c.Remote.AppDir == "" {
		return errors.New("remote.app_dir is required")
	}
	if c.Remote.Service == "" {
		return errors.New("remote.service is required")
	}
	if len(c.Manifest.RootFiles) == 0 && c.Manifest.PackageDir == "" {
		return errors.New("manifest must list root_files or a package_dir")
	}
	return nil
}
