package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Timurc390/Boardly/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. "json" is for production; any other format gives text output
// with source locations. Every record carries the service name and version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", "boardly"),
		slog.String("version", Version),
	)
}

// parseLevel accepts slog level names, including offsets such as "warn+2".
// Anything unparsable logs at info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
