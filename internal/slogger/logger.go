package slogger

import (
	"io"
	"log/slog"
	"os"
)

// Setup creates and configures a slog.Logger and sets it as the default.
// format should be "json" (production) or "text" (development).
// CTXSCALE_LOG_LEVEL=debug enables the per-response scaling records.
func Setup(format string) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("CTXSCALE_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	logger := New(os.Stdout, format, level)
	slog.SetDefault(logger)

	return logger
}

// New builds a logger writing to w without touching the default logger.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}
