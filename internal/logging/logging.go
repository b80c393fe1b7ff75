// =============================================================================
// Competency Framework Reformatter - Logging
// =============================================================================
//
// Structured logging setup on zap. Progress output meant for the operator
// stays on stdout via fmt in the cmd package; the zap logger carries the
// per-file diagnostics (skips, notices, failures) to stderr or the
// configured log file.
//
// =============================================================================

package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger.
//
// PARAMETERS:
//   - level: "debug", "info", "warn", or "error".
//   - logFile: path to write the log to; empty keeps the default (stderr).
//   - verbose: forces debug level regardless of the configured one.
func New(level, logFile string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", level, err)
	}
	config.Level = zap.NewAtomicLevelAt(parsed)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	if logFile != "" {
		config.OutputPaths = []string{logFile}
		config.ErrorOutputPaths = []string{logFile}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
