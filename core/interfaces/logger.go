// ABOUTME: Logger interface decouples services from the logging backend
// ABOUTME: Implemented on logrus in infrastructure/logger

package interfaces

// Logger defines the interface for logging throughout the application.
//
// Example usage:
//
//	logger.Info("Fetched restaurants", map[string]interface{}{
//		"bucket": "37.775,-122.419,5000",
//		"count":  42,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
