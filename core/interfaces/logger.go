package interfaces

// Logger defines the interface for structured logging throughout the
// application. This abstraction allows for different logging backends
// (logrus, zap, etc.) while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Fetching repositories", map[string]interface{}{
//		"username": "alice",
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
