package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Text output on stderr keeps local runs
// readable; the level comes from config.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
