package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/socialpulse/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
// Loading already validates; a config that reaches RunE is valid.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the config file, the socialpulse.yaml
project overlay, .env and SOCIALPULSE_* environment variables.

This includes:
- Schema version compatibility
- API base URL syntax
- Positive screen limits and timeouts`,
		Example: `  # Validate current configuration
  socialpulse config validate

  # Validate and show detailed information
  socialpulse config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "✅ Configuration is valid")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "Configuration details:")
	_, _ = fmt.Fprintf(out, "  API base URL: %s\n", cfg.API.BaseURL)
	_, _ = fmt.Fprintf(out, "  API timeout: %s\n", cfg.API.Timeout)
	_, _ = fmt.Fprintf(out, "  Top users limit: %d\n", cfg.Screens.TopUsers.Limit)
	_, _ = fmt.Fprintf(out, "  Trending limit: %d\n", cfg.Screens.Trending.Limit)
	_, _ = fmt.Fprintf(out, "  Feed page size: %d\n", cfg.Screens.Feed.PageSize)
	_, _ = fmt.Fprintf(out, "  User posts shown: %d\n", cfg.Detail.UserPostsShown)
	_, _ = fmt.Fprintf(out, "  Logging level: %s\n", cfg.Logging.Level)
	_, _ = fmt.Fprintf(out, "  Log file: %s\n", cfg.Logging.File)
}

// NewConfigShowCmd creates the config show command that prints the effective configuration.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(config.GetGlobalConfig()); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return enc.Close()
		},
	}
}
