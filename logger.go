package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// NewLogger returns a structured slog.Logger at the named level. Terminals get
// the text handler, everything else JSON.
func NewLogger(level string) *slog.Logger {
	return newLogger(os.Stdout, level, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

func newLogger(w io.Writer, level string, text bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
