package app

import (
	"os"

	"github.com/guttosm/cookbook-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger from the
// LOG_LEVEL and LOG_PRETTY environment variables. An unset or bogus
// level falls back to info.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
