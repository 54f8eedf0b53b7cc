// Package observability provides the structured logging setup shared by
// consumers of the payment-plan library. The engine itself never logs; the
// quoting facade and host applications attach loggers built here.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "text"
}

// InitLogger builds a structured slog.Logger writing to stdout and installs
// it as the process default.
func InitLogger(cfg LogConfig) *slog.Logger {
	logger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a structured slog.Logger writing to w without touching
// the process default. Useful in tests.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a string level to slog.Level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
