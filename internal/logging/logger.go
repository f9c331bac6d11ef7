// Package logging builds the zap logger the CLI commands share.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Build constructs a production zap logger at the given level. The --verbose
// flag forces debug regardless of the configured level.
func Build(level string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// Named returns a child logger for one exercise area.
func Named(logger *zap.Logger, area string) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(area)
}
