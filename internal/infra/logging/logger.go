// Package logging provides the slog handler used by issue-guard.
// Lines are written as:
//
//	[2025-12-30 09:32:51] [INFO] [category] message key=value
//
// When running inside GitHub Actions, errors and warnings are additionally
// emitted as workflow commands (::error::, ::warning::) so they show up as
// annotations on the run.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// CategoryKey is the attribute rendered in the category column.
const CategoryKey = "category"

// Ensure Handler implements slog.Handler.
var _ slog.Handler = (*Handler)(nil)

// Handler is a slog.Handler writing the issue-guard line format.
// Fields are ordered to minimize memory padding.
type Handler struct {
	w       io.Writer
	mu      *sync.Mutex
	now     func() time.Time
	group   string
	attrs   []slog.Attr
	level   slog.Leveler
	actions bool
}

// NewHandler creates a Handler writing to w at the given minimum level.
// Pass a *slog.LevelVar to change the level after construction.
// actions enables GitHub Actions workflow commands for warnings and errors.
func NewHandler(w io.Writer, level slog.Leveler, actions bool) *Handler {
	return &Handler{
		w:       w,
		mu:      &sync.Mutex{},
		now:     time.Now,
		level:   level,
		actions: actions,
	}
}

// New returns a logger backed by a Handler.
func New(w io.Writer, level slog.Leveler, actions bool) *slog.Logger {
	return slog.New(NewHandler(w, level, actions))
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Enabled reports whether level is at or above the minimum level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	category := "global"
	var kv []string

	appendAttr := func(a slog.Attr) bool {
		if a.Key == CategoryKey {
			category = a.Value.String()
			return true
		}
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		kv = append(kv, key+"="+formatValue(a.Value))
		return true
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(appendAttr)

	t := r.Time
	if t.IsZero() {
		t = h.now()
	}
	line := formatLog(t, r.Level, category, r.Message, kv)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.w, line); err != nil {
		return err
	}
	if h.actions && r.Level >= slog.LevelWarn {
		_, err := io.WriteString(h.w, workflowCommand(r.Level, r.Message, kv))
		return err
	}
	return nil
}

// WithAttrs returns a handler that always includes attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a handler that prefixes subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

// formatLog formats a log entry in the specified format.
// Format: [2025-12-30 09:32:51] [INFO] [category] message key=value
func formatLog(t time.Time, level slog.Level, category, msg string, kv []string) string {
	line := fmt.Sprintf("[%s] [%s] [%s] %s",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		category,
		msg,
	)
	if len(kv) > 0 {
		line += " " + strings.Join(kv, " ")
	}
	return line + "\n"
}

// workflowCommand renders a GitHub Actions annotation command.
func workflowCommand(level slog.Level, msg string, kv []string) string {
	cmd := "warning"
	if level >= slog.LevelError {
		cmd = "error"
	}
	text := msg
	if len(kv) > 0 {
		text += " " + strings.Join(kv, " ")
	}
	return fmt.Sprintf("::%s::%s\n", cmd, escapeData(text))
}

// escapeData escapes workflow command data the way the Actions runner expects.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

func formatValue(v slog.Value) string {
	s := v.Resolve().String()
	if strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

func levelToString(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
