package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "arc-deploy [commit message]",
	Short: "Commit, push, upload and restart the ARC application on its target host",
	Long: "Runs the fixed release pipeline: verifies the deploy key, commits local changes, " +
		"pushes to the configured remote, uploads the deployment manifest to the staging " +
		"directory over SFTP, and swaps files into place and restarts the service in a " +
		"single remote session.",
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Assigned in init rather than in the rootCmd literal to avoid an
// initialization cycle (RunE -> applyOverrides -> rootCmd).
func rootRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg)
	if err := cfg.validate(); err != nil {
		return err
	}

	msgArg := ""
	if len(args) == 1 {
		msgArg = args[0]
	}

	p := &pipeline{
		cfg:       cfg,
		repoPath:  ".",
		msgArg:    msgArg,
		assumeYes: cfgAssumeYes,
		log:       newLogger(cfgVerbose),
		out:       cmd.OutOrStdout(),
	}
	rep := p.run()
	printSummary(cmd.OutOrStdout(), rep, cfg)

	if ab := rep.aborted(); ab != nil {
		return fmt.Errorf("aborted at %s: %w", ab.Name, ab.Err)
	}
	if rep.warned() {
		return fmt.Errorf("completed: %w", errActivationIncomplete)
	}
	return nil
}

// applyOverrides copies flag/env values over the loaded file config.
func applyOverrides(cfg *Config) {
	if cfgTarget != "" {
		cfg.Target.Host = cfgTarget
	}
	if cfgUser != "" {
		cfg.Target.User = cfgUser
	}
	if cfgKeyPath != "" {
		cfg.Target.KeyPath = expandHome(cfgKeyPath)
	}
	if cfgKnownHosts != "" {
		cfg.Target.KnownHosts = expandHome(cfgKnownHosts)
	}
	if rootCmd.Flags().Changed("strict-host-key") || cfgStrictHost {
		cfg.Target.StrictHostKey = cfgStrictHost
	}
	if cfgConnTimeout > 0 {
		cfg.Timeouts.Connect = cfgConnTimeout.String()
	}
	if cfgCmdTimeout > 0 {
		cfg.Timeouts.Command = cfgCmdTimeout.String()
	}
}

func init() {
	rootCmd.RunE = rootRunE

	// Flags
	rootCmd.Flags().StringVarP(&cfgConfigPath, "config", "c", "deploy.yaml", "Path to the YAML deploy configuration")
	rootCmd.Flags().StringVarP(&cfgTarget, "target", "t", "", "Target host override (host:port)")
	rootCmd.Flags().StringVarP(&cfgUser, "user", "u", "", "SSH username override")
	rootCmd.Flags().StringVar(&cfgKeyPath, "key", "", "Path to the SSH deploy key override")
	rootCmd.Flags().StringVar(&cfgKnownHosts, "known-hosts", "", "Path to known_hosts file override")
	rootCmd.Flags().BoolVar(&cfgStrictHost, "strict-host-key", false, "Require host key verification")
	rootCmd.Flags().DurationVar(&cfgConnTimeout, "conn-timeout", 0, "Connection timeout override (e.g. 15s)")
	rootCmd.Flags().DurationVar(&cfgCmdTimeout, "cmd-timeout", 0, "Remote command timeout override (e.g. 60s)")
	rootCmd.Flags().BoolVarP(&cfgAssumeYes, "yes", "y", false, "Never prompt; use the default commit message")
	rootCmd.Flags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Enable debug logging")

	// Bind env with Viper
	_ = viper.BindPFlag("config", rootCmd.Flags().Lookup("config"))
	_ = viper.BindPFlag("target", rootCmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("user", rootCmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("key", rootCmd.Flags().Lookup("key"))
	_ = viper.BindPFlag("known-hosts", rootCmd.Flags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.Flags().Lookup("strict-host-key"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.Flags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("cmd-timeout", rootCmd.Flags().Lookup("cmd-timeout"))

	viper.SetEnvPrefix("ARC_DEPLOY")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("config"); v != "" {
			cfgConfigPath = v
		}
		if v := viper.GetString("target"); v != "" {
			cfgTarget = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("cmd-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgCmdTimeout = d
			}
		}
	})
}
