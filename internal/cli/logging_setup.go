package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/socialpulse/internal/config"
	"github.com/rshade/socialpulse/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
// Logs go to the configured file so they never mix with the TUI; --debug sends
// them to stderr in console format instead.
func setupLogging(cmd *cobra.Command) logging.LogResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	} else if debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), "stderr")
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Str(logging.TraceIDField, traceID).Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
