// Package logging builds the application logger. Diagnostics go to a
// side file so they never bleed into the terminal UI; with no log file
// configured everything is dropped.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bookshelf-cli/bookshelf/internal/config"
)

// New returns a sugared logger per cfg. The caller owns Sync.
func New(cfg config.Config) (*zap.SugaredLogger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop().Sugar(), nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{cfg.LogFile}
	zapConfig.ErrorOutputPaths = []string{cfg.LogFile}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
