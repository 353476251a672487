package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Logger is the common interface for all loggers
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Trace(msg string, args ...any)
}

// Default returns the default logger that uses package-level functions
func Default() Logger {
	return &defaultLogger{}
}

// defaultLogger wraps the package-level logging functions
type defaultLogger struct{}

func (d *defaultLogger) Info(msg string, args ...any) {
	Info(msg, args...)
}

func (d *defaultLogger) Debug(msg string, args ...any) {
	Debug(msg, args...)
}

func (d *defaultLogger) Error(msg string, args ...any) {
	Error(msg, args...)
}

func (d *defaultLogger) Warn(msg string, args ...any) {
	Warn(msg, args...)
}

func (d *defaultLogger) Trace(msg string, args ...any) {
	Trace(msg, args...)
}

// slogLogger adapts a *slog.Logger to Logger
type slogLogger struct {
	*slog.Logger
}

func (l slogLogger) Trace(msg string, args ...any) {
	l.Log(context.Background(), SlogLevelTrace, msg, args...)
}

// ForDay returns a logger writing to w with a day prefix on every line.
// mu serializes writes from all loggers sharing w.
func ForDay(day int, w io.Writer, mu *sync.Mutex) Logger {
	return slogLogger{slog.New(NewHandlerForDay(day, w, GetCurrentLevel(), mu))}
}

// NewCallbackLogger creates a logger that forwards formatted lines to callback
func NewCallbackLogger(callback CallbackFunc, minLevel slog.Level) Logger {
	return slogLogger{slog.New(NewCallbackHandler(callback, minLevel))}
}
