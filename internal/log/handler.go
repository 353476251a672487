package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler for terse terminal output with an optional day prefix
type Handler struct {
	level  slog.Level
	mu     *sync.Mutex
	day    int
	attrs  []slog.Attr
	output io.Writer
}

// NewHandler creates a new handler for formatted output
func NewHandler(output io.Writer, level slog.Level) *Handler {
	return &Handler{
		level:  level,
		mu:     &sync.Mutex{},
		output: output,
	}
}

// NewHandlerForDay creates a handler that prefixes every line with the day.
// Handlers writing to the same output must share mu.
func NewHandlerForDay(day int, output io.Writer, level slog.Level, mu *sync.Mutex) *Handler {
	h := NewHandler(output, level)
	h.day = day
	h.mu = mu
	return h
}

// Enabled returns whether the handler handles records at the given level
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle processes the Record and outputs formatted log
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(levelPrefix(r.Level))
	if h.day > 0 {
		fmt.Fprintf(&b, "[day %d] ", h.day)
	}
	b.WriteString(formatMessage(r, h.attrs))
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

// WithGroup returns the handler unchanged; groups are flattened
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

func levelPrefix(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "[ERROR] "
	case l >= slog.LevelWarn:
		return "[WARN] "
	case l >= slog.LevelInfo:
		return "" // No prefix for INFO
	case l >= slog.LevelDebug:
		return "[DEBUG] "
	default:
		return "[TRACE] "
	}
}

// formatMessage renders the message followed by attributes as key=value
func formatMessage(r slog.Record, attrs []slog.Attr) string {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.TimeKey {
			return true
		}
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
		return true
	})
	return b.String()
}

// CallbackFunc receives each formatted log line with its level
type CallbackFunc func(level slog.Level, line string)

// CallbackHandler is a slog.Handler that forwards log lines to a callback,
// used where direct terminal output would corrupt a running TUI
type CallbackHandler struct {
	level    slog.Level
	callback CallbackFunc
	attrs    []slog.Attr
}

// NewCallbackHandler creates a new slog handler that forwards logs to a callback
func NewCallbackHandler(callback CallbackFunc, level slog.Level) *CallbackHandler {
	return &CallbackHandler{level: level, callback: callback}
}

// Enabled reports whether the handler handles records at the given level
func (h *CallbackHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle forwards the formatted record to the callback
func (h *CallbackHandler) Handle(_ context.Context, r slog.Record) error {
	if h.callback == nil {
		return nil
	}
	h.callback(r.Level, formatMessage(r, h.attrs))
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the receiver's attributes and the arguments
func (h *CallbackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CallbackHandler{
		level:    h.level,
		callback: h.callback,
		attrs:    append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// WithGroup returns the handler unchanged; groups are flattened
func (h *CallbackHandler) WithGroup(string) slog.Handler {
	return h
}
