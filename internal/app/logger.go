package app

import (
	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the logging configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
