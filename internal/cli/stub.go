package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/socialpulse/internal/logging"
	"github.com/rshade/socialpulse/internal/stubapi"
)

const defaultStubAddr = ":5000"

// NewStubServeCmd creates the stub serve command, which serves fixture data on the
// backend's routes until interrupted.
func NewStubServeCmd() *cobra.Command {
	var (
		addr     string
		fixtures string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fixture data on the backend API routes",
		Example: `  # Serve the built-in fixtures
  socialpulse stub serve

  # Serve fixtures from a YAML file on another port
  socialpulse stub serve --addr :8080 --fixtures ./fixtures.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fx := stubapi.DefaultFixtures()
			if fixtures != "" {
				loaded, err := stubapi.LoadFixtures(fixtures)
				if err != nil {
					return fmt.Errorf("loading fixtures: %w", err)
				}
				fx = loaded
			}

			log := logging.ComponentLogger(logging.FromContext(cmd.Context()), "stubapi")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stub backend listening on %s\n", addr)
			return stubapi.Serve(cmd.Context(), addr, fx, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultStubAddr, "listen address")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixtures file (default: built-in data)")

	return cmd
}
