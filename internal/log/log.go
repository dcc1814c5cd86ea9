// Package log provides a leveled, structured logger.
// The log messages are intended to be user-facing,
// so the output format favors reading over parsing.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger is a structured logger.
type Logger struct{ *slog.Logger }

// New builds a logger that writes plain text to the given writer.
// Messages below lvl are dropped.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl, mu: new(sync.Mutex)})}
}

// NewColor is like New but highlights levels and attribute names with
// terminal escape codes.
func NewColor(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl, Color: true, mu: new(sync.Mutex)})}
}

// WithName builds a new logger with the provided name. Messages posted to
// it are prefixed with the name. The returned logger is safe to use
// concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	h, ok := l.Handler().(*handler)
	if !ok {
		return &Logger{l.WithGroup(name)}
	}
	return &Logger{slog.New(h.withName(name))}
}
