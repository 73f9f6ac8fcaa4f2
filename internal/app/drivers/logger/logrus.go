package logger

import (
	"sangha-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the bootstrap logger used before zap is available and
// for process-level lifecycle messages.
func NewLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if internalConfig.App.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
