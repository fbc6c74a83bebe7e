// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/restaurant-service/config"
	"github.com/guttosm/restaurant-service/internal/logger"
	"github.com/rs/zerolog"
)

// InitializeLogger configures the global JSON logger and returns it.
func InitializeLogger(cfg config.LogConfig) zerolog.Logger {
	logger.Init(cfg.Level, cfg.Pretty)
	return logger.Logger()
}
