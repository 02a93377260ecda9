package cmd

import (
	"os"
	"time"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags and/or environment variables.
	cfgConfigPath  string
	cfgTarget      string
	cfgUser        string
	cfgKeyPath     string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgConnTimeout time.Duration
	cfgCmdTimeout  time.Duration
	cfgAssumeYes   bool
	cfgVerbose     bool
)

// Allow tests to stub dialing, uploads, prompting and remote execution.
var (
	dialSSHFunc          = dialSSH
	newUploaderFunc      = newSFTPUploader
	runRemoteCommandFunc = runRemoteCommand
	promptFunc           = promptCommitMessage
)

// exitFunc allows tests to stub process exit behavior.
var exitFunc = os.Exit
