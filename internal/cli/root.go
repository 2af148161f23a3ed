package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/socialpulse/internal/config"
	"github.com/rshade/socialpulse/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the socialpulse CLI.
// It loads configuration, wires up logging and tracing, and registers the
// screen, config and stub subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogResult

	cmd := &cobra.Command{
		Use:           "socialpulse",
		Short:         "Browse top users, trending posts and the feed from the terminal",
		Long:          "socialpulse: expandable lists of users and posts from a social analytics backend",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.socialpulse/config.yaml)")
	cmd.PersistentFlags().String("api-url", "", "backend base URL (overrides config and "+config.EnvAPIURL+")")

	cmd.AddCommand(
		NewUsersCmd(),
		NewTrendingCmd(),
		NewFeedCmd(),
		newConfigCmd(),
		newStubCmd(),
	)

	return cmd
}

// loadConfig loads the configuration, applies flag overrides and publishes it globally.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.API.BaseURL = apiURL
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --api-url: %w", err)
		}
	}

	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Browse the top users interactively
  socialpulse users

  # Print trending posts as a table, with the comments of one post
  socialpulse trending --output table --expand 64f1c0

  # Print the second page of the feed as JSON
  socialpulse feed --page 2 --output json

  # Start a local stub backend and point the client at it
  socialpulse stub serve --addr :5000
  socialpulse --api-url http://localhost:5000 feed

  # Write the default configuration
  socialpulse config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// newStubCmd creates the stub command group.
func newStubCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "stub", Short: "Local stub backend for demos and testing"}
	cmd.AddCommand(NewStubServeCmd())
	return cmd
}
