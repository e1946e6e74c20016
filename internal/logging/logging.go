// Package logging wraps zerolog behind a small printf-style interface.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ApplicationName is attached to every log line.
const ApplicationName = "centrapay"

// Logger is the printf-style logger passed through command contexts.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// With returns a logger carrying an additional string field.
	With(key, value string) Logger
}

type loggingWrapper struct {
	logger zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

func (l *loggingWrapper) With(key, value string) Logger {
	return &loggingWrapper{logger: l.logger.With().Str(key, value).Logger()}
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

const loggerKey key = 0

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) Logger {
	logger, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		return NewNoopLogger()
	}
	return logger
}

// New creates a console logger writing to w. Debug output is only emitted
// when verbose is set; otherwise warnings and errors are shown.
func New(w io.Writer, verbose bool) Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}

	logger := zerolog.New(console).
		Level(level).
		With().
		Str("app", ApplicationName).
		Timestamp().
		Logger()

	return &loggingWrapper{logger: logger}
}

// NewNoopLogger returns a logger that discards everything.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct{}

func (l *noopLogger) Debug(format string, v ...interface{}) {}

func (l *noopLogger) Info(format string, v ...interface{}) {}

func (l *noopLogger) Warn(format string, v ...interface{}) {}

func (l *noopLogger) Error(format string, v ...interface{}) {}

func (l *noopLogger) With(key, value string) Logger { return l }
