// Package cli parses the command line and hands the resulting configuration
// to the shell.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fadel/internal/config"
)

// RunFunc starts the shell with a validated configuration
type RunFunc func(cfg *config.Config) error

type flags struct {
	env      string
	debug    bool
	logLevel string
}

// NewRootCmd creates the root command. Flags override the environment,
// which overrides the preset selected by --env or FADEL_ENV.
func NewRootCmd(run RunFunc) *cobra.Command {
	var f flags

	about := config.DefaultConfig().About
	rootCmd := &cobra.Command{
		Use:           "fadel",
		Short:         "Fadel - Compare Images",
		Long:          about.Name + " " + about.Version + "\nDesktop shell for comparing images side by side.",
		Version:       about.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	rootCmd.Flags().StringVar(&f.env, "env", "", "Configuration preset: production, development or test (default from "+config.EnvEnvironment+")")
	rootCmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")

	return rootCmd
}

func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	var cfg *config.Config
	if cmd.Flags().Changed("env") {
		env, err := config.ParseEnvironment(f.env)
		if err != nil {
			return nil, fmt.Errorf("--env: %w", err)
		}
		cfg = config.ConfigForEnvironment(env)
		cfg.LoadFromEnvironment()
	} else {
		loaded, err := config.LoadFromEnv()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if f.debug {
		cfg.LogLevel = "debug"
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
