// Package log provides structured logging for CensGo estimation runs.
//
// The package defines a minimal, slog-compatible Logger interface so the
// backend can be swapped without touching estimator code, plus a default
// JSON implementation that extracts cockroachdb/errors stack traces into
// their own attribute. Attribute key constants keep field names consistent
// across the library.
package log

import "context"

// Logger is a structured logging interface compatible with log/slog.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs detailed diagnostic information, typically disabled in
	// production.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop the
	// operation.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If an error value appears among the
	// fields, implementations may attach stack trace information.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated on
	// every subsequent record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive field construction.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level, value-compatible with slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
