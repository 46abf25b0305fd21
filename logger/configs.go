package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration to set the desired log level.
const (
	// Debug is the most verbose level, intended for development and troubleshooting.
	Debug = "debug"

	// Info is the standard level for general operational information.
	Info = "info"

	// Warning is the level for potential issues that are not errors.
	Warning = "warning"

	// Error is the level for error conditions only.
	Error = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning", and "error".
	// Unknown values default to "info".
	Level string

	// ServiceName is attached to every log entry as the "service" field so
	// logs from multiple services can be separated in a shared backend.
	ServiceName string

	// CallerSkip controls how many wrapper frames are skipped when resolving
	// the caller location. The default of 1 is correct for direct usage of
	// this package; increase it when wrapping the logger in another layer.
	CallerSkip int
}
