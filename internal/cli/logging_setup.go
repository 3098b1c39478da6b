package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/logging"
)

// setupLogging configures logging from cfg and the --debug flag, and puts a
// trace-tagged logger into the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config, debug bool) logging.LogPathResult {
	loggingCfg := cfg.Logging.ToLoggingConfig()
	if debug {
		loggingCfg = config.DebugLoggingConfig()
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.Output == logging.OutputFile {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logging.WithTraceLogger(ctx, result.Logger)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).
		Str("command", cmd.Name()).
		Str(logging.FieldTraceID, traceID).
		Str("endpoint", cfg.API.Endpoint).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult == nil {
		return nil
	}
	return logResult.Close()
}
