// Package logging provides the slog handler used by the CLI: one line
// per record on stderr, level tag, key=value attributes, ANSI color on
// warnings and errors. Diagnostics never mix with rendered output on
// stdout.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiDim    = "\033[2m"
	ansiReset  = "\033[0m"
)

// Handler is a minimal slog.Handler for terminal diagnostics.
type Handler struct {
	out   io.Writer
	level slog.Level
	group string
	attrs []string
}

func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{out: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	parts := make([]string, 0, 2+r.NumAttrs()+len(h.attrs))
	parts = append(parts, levelTag(r.Level))
	if h.group != "" {
		parts = append(parts, "["+h.group+"]")
	}
	parts = append(parts, r.Message)
	parts = append(parts, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, formatAttr(h.group, a))
		return true
	})

	line := strings.Join(parts, " ")
	switch {
	case r.Level >= slog.LevelError:
		line = ansiRed + line + ansiReset
	case r.Level >= slog.LevelWarn:
		line = ansiYellow + line + ansiReset
	case r.Level < slog.LevelInfo:
		line = ansiDim + line + ansiReset
	}

	_, err := fmt.Fprintln(h.out, line)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(append([]string{}, h.attrs...), formatAttrs(h.group, attrs)...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = name
	return &clone
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "error:"
	case l >= slog.LevelWarn:
		return "warning:"
	case l >= slog.LevelInfo:
		return "info:"
	default:
		return "debug:"
	}
}

func formatAttr(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return fmt.Sprintf("%s=%v", key, a.Value)
}

func formatAttrs(group string, attrs []slog.Attr) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, formatAttr(group, a))
	}
	return out
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a stderr logger at the named level.
func New(level string) *slog.Logger {
	return slog.New(NewHandler(os.Stderr, ParseLevel(level)))
}

// SetDefault installs the stderr logger as the process default.
func SetDefault(level string) {
	slog.SetDefault(New(level))
}
