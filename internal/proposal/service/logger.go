package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sonaeson/groupbuy-proposal/internal/api/http/middleware"
	"github.com/sonaeson/groupbuy-proposal/internal/logging"
)

// Logger provides structured logging for services
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := middleware.GetRequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{entry: logging.GetLogger().WithField("request_id", requestID)}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.entry.WithField("operation", operation).WithError(err).Error("operation failed")
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.entry.WithField("operation", operation).Infof(format, args...)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.entry.WithField("operation", operation).Warnf(format, args...)
}
