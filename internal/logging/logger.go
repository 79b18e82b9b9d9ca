package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/tatianab/detective-quest/internal/errors"
)

var ErrUnknownLevel = errors.NewSentinel("unknown log level")

// New creates a text logger writing to w. Attributes stored in a context with [WithAttrs] are added to every
// record logged with a *Context method.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}

// Discard returns a logger that drops everything. Useful in tests and for commands that print to stdout.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

// ParseLevel maps debug, info, warn and error to their slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Wrap(ErrUnknownLevel, "parse log level", slog.String("level", s))
}
