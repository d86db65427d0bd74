package app

import (
	"io"
	"log/slog"

	"github.com/heartmarshall/nihongo-hints/internal/config"
)

// Setup is the common entry point of every command. It loads configuration
// from path (or the environment when path is empty), initializes the logger,
// and logs startup information. The returned closer must be closed on exit.
func Setup(tool, path string) (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, closer := NewLogger(cfg.Log)

	logger.Info("starting",
		slog.String("tool", tool),
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return cfg, logger, closer, nil
}
