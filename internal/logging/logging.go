// internal/logging/logging.go
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a JSON logger writing to out with the given level.
func NewLogger(out io.Writer, level string) *logrus.Logger {
	var log = logrus.New()

	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)
	log.SetLevel(ParseLevel(level))

	return log
}

// ParseLevel maps a level name to a logrus level. Unknown names fall back to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// IsValidLevel reports whether level is one of the names ParseLevel understands.
func IsValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// Discard returns a logger that drops everything. Used by tests and as a fallback.
func Discard() *logrus.Logger {
	return NewLogger(io.Discard, "error")
}
