// Package logging builds the zap logger used by the command line tools and
// routes the standard library logger into it.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/rune-caster/internal/config"
	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// New creates a logger for the given configuration
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "invalid LOG_LEVEL").
			WithMeta("level", cfg.Level)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}

// RedirectStdLog sends everything written with the log package to logger at
// info level. The returned function restores the previous output.
func RedirectStdLog(logger *zap.Logger) func() {
	return zap.RedirectStdLog(logger.Named("std"))
}
