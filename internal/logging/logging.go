package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toyz/testgen/internal/config"
	"github.com/toyz/testgen/internal/errors"
)

// New builds a zap logger at the given level; development selects the console encoder
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.ConfigurationError("log_level", err.Error())
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.WrapConfigurationError("logger", "build", err)
	}
	return logger, nil
}

// FromConfig builds the service logger
func FromConfig(cfg *config.Config) (*zap.Logger, error) {
	return New(cfg.LogLevel, cfg.Development)
}
