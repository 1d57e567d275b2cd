// ABOUTME: Logrus implementation of the Logger interface
// ABOUTME: Emits JSON-formatted structured logs with level support

package logrus

import (
	sirupsen "github.com/sirupsen/logrus"

	"mealmap-api/core/interfaces"
)

// Logger implements the interfaces.Logger contract on logrus.
type Logger struct {
	log *sirupsen.Logger
}

var _ interfaces.Logger = (*Logger)(nil)

// NewLogger creates a JSON-formatted logrus logger at the given level.
// Unknown level strings fall back to info.
func NewLogger(level string) *Logger {
	l := sirupsen.New()
	l.SetFormatter(&sirupsen.JSONFormatter{})

	parsed, err := sirupsen.ParseLevel(level)
	if err != nil {
		parsed = sirupsen.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{log: l}
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Error(msg)
}
