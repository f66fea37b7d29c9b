package logger

import (
	"context"

	"github.com/aalemi-dev/logkit/logpoint"
)

// Logger provides a high-level interface for structured logging.
// It wraps Uber's Zap logger with a simplified API and optional tracing integration.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	// Debug logs a debug-level message, useful for development and troubleshooting.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message about general application progress.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs a warning message, indicating potential issues.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs an error message with details of the error.
	Error(msg string, err error, fields ...map[string]interface{})

	// DebugWithContext logs a debug-level message with trace context.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// InfoWithContext logs an informational message with trace context.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Backend is what log plans are executed against: a level check per named
// logger and a sink for rendered entries.
//
// This interface is implemented by the concrete *LoggerClient type.
type Backend interface {
	// Enabled reports whether an entry at level would be written by the
	// logger called name. Executors check it before extracting any values.
	Enabled(name string, level logpoint.Level) bool

	// Write renders e.Message with e.Args and writes the entry.
	Write(ctx context.Context, e Entry)
}

// Entry is one record produced by executing a log plan.
type Entry struct {
	// Logger is the name of the logger, usually Plan.Logger().
	Logger string

	// Level is the severity, usually Plan.Level().
	Level logpoint.Level

	// Message is a template with "{}" placeholders.
	Message string

	// Args fill the placeholders of Message in order.
	Args []any

	// Err is attached as the "error" field when non-nil.
	Err error

	// Fields are attached as structured fields.
	Fields map[string]any
}
