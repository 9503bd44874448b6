package audit

import (
	"context"

	"github.com/sirupsen/logrus"
)

type LoggerSTDOUT struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerSTDOUT wraps logger. When enabled is false every event is dropped.
func NewLoggerSTDOUT(logger *logrus.Logger, enabled bool) *LoggerSTDOUT {
	return &LoggerSTDOUT{enabled: enabled, logger: logger}
}

func (a *LoggerSTDOUT) Log(ctx context.Context, action string, resource string, details map[string]interface{}) {
	if !a.enabled || a.logger == nil {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_resource": resource,
	}

	// Range over nil map is safe in Go, so explicit nil check is not needed.
	for k, v := range details {
		fields["detail."+k] = v
	}

	// Log at INFO level with a specific prefix to make it easy to grep
	a.logger.WithContext(ctx).WithFields(fields).Info("AUDIT EVENT")
}
