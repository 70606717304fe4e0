package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// actionsEscaper escapes workflow command data so that multi-line messages
// stay inside one command.
var actionsEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// ActionsHandler is a slog.Handler that emits GitHub Actions workflow commands:
// ::debug:: for debug records, ::warning:: and ::error:: for the matching
// levels, and plain lines for info.
type ActionsHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewActionsHandler creates an ActionsHandler writing to w.
func NewActionsHandler(w io.Writer, opts *slog.HandlerOptions) *ActionsHandler {
	if w == nil {
		w = os.Stderr
	}
	return &ActionsHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: levelOf(opts),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ActionsHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single workflow command line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ActionsHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if attrs := formatAttrs(h.group, h.attrs, r); attrs != "" {
		msg += " " + attrs
	}

	var line string
	switch {
	case r.Level >= slog.LevelError:
		line = "::error::" + actionsEscaper.Replace(msg)
	case r.Level >= slog.LevelWarn:
		line = "::warning::" + actionsEscaper.Replace(msg)
	case r.Level >= slog.LevelInfo:
		line = msg
	default:
		line = "::debug::" + actionsEscaper.Replace(msg)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *ActionsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ActionsHandler{
		mu:    h.mu,
		w:     h.w,
		level: h.level,
		attrs: appendAttrs(h.attrs, attrs),
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *ActionsHandler) WithGroup(name string) slog.Handler {
	return &ActionsHandler{
		mu:    h.mu,
		w:     h.w,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}
