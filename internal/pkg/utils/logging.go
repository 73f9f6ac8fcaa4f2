package utils

import (
	"sangha-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func LogBusinessEvent(logger *zap.Logger, event, requestID string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}
	logger.Info("Business event", append(base, fields...)...)
}

func LogSecurityEvent(logger *zap.Logger, event, requestID, severity string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSeverityKey, severity),
	}
	logger.Info("Security event", append(base, fields...)...)
}
