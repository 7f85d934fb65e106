package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field represents a structured logging field as a key/value pair.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field value; supported concrete types get typed
	// encoding, anything else falls back to interface encoding.
	Value any
}

// String creates a string-valued field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int-valued field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64-valued field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool-valued field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates an error-valued field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
type Logger interface {
	// Debug logs a message at debug level with optional fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with the given error and
	// optional fields. A nil err is permitted.
	Error(msg string, err error, fields ...Field)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a Logger backed by the given zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a Logger writing JSON lines to w, tagged with the given
// component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates the application's default Logger: human-readable
// console output on stderr, so stdout stays a clean report stream.
func NewDefaultLogger() *ZerologAdapter {
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	zl := zerolog.New(console).With().Timestamp().Logger()
	return &ZerologAdapter{logger: zl}
}

// Debug logs a message at debug level with optional fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level with optional fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.logger.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level with optional fields.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	a.applyFields(a.logger.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with the given error and optional
// fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// applyFields attaches the given fields to the event with typed encoding
// for the common cases.
func (a *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// NopLogger is a Logger that discards everything. Useful as a default for
// components that accept an optional Logger.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...Field) {}

// Info implements Logger.
func (NopLogger) Info(string, ...Field) {}

// Warn implements Logger.
func (NopLogger) Warn(string, ...Field) {}

// Error implements Logger.
func (NopLogger) Error(string, error, ...Field) {}
