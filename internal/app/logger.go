package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/heartmarshall/nihongo-hints/internal/config"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output.
// Format "text" produces human-readable output with source info.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output goes to os.Stderr and, when cfg.File is set, also to a rotating
// log file. The returned closer releases the file.
func NewLogger(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		w = io.MultiWriter(os.Stderr, file)
		closer = file
	}

	logger := slog.New(newHandler(w, cfg))
	slog.SetDefault(logger)

	return logger, closer
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
