package cmd

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/priyam/internal/config"
)

// newLogger builds the CLI logger from the [general] section. verbose
// forces debug level.
func newLogger(w io.Writer, g config.GeneralConfig, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch g.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if g.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
