// Package observability provides the structured logger and metrics shared by
// the pipeline stages.
package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds a slog.Logger writing to stderr, with handler and level
// chosen by the LOG_FORMAT and LOG_LEVEL settings.
func NewLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
