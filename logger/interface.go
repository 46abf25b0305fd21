package logger

// Logger provides a high-level interface for structured logging.
// It wraps Uber's Zap logger with a simplified API: every method takes the
// message, an optional error, and optional maps of structured fields.
//
// This interface is implemented by the concrete *LoggerClient type.
// Packages in this kit accept a Logger rather than a concrete type so hosts
// can plug in their own logging implementation.
type Logger interface {
	// Debug logs a debug-level message, useful for development and troubleshooting.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message about general application progress.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs a warning message, indicating potential issues that are not errors.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs an error message with details of the error.
	Error(msg string, err error, fields ...map[string]interface{})
}
