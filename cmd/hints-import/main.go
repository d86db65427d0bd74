// Command hints-import publishes a finished hints document into PostgreSQL.
// The direction (forward or reverse) selects which hints file is read.
//
// Flags:
//
//	-config  path to config YAML (optional; falls back to env)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/nihongo-hints/internal/adapter/postgres"
	"github.com/heartmarshall/nihongo-hints/internal/adapter/postgres/hint"
	"github.com/heartmarshall/nihongo-hints/internal/app"
	"github.com/heartmarshall/nihongo-hints/internal/app/hintimport"
	"github.com/heartmarshall/nihongo-hints/internal/config"
	"github.com/heartmarshall/nihongo-hints/migrations"
)

// Compile-time interface assertion.
var _ hintimport.HintRepo = (*hint.Repo)(nil)

func main() {
	configPath := flag.String("config", "", "path to config YAML")
	flag.Parse()

	cfg, logger, closer, err := app.Setup("hints-import", *configPath)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		cancel()
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	opts := hintimport.OptionsFromConfig(cfg.Data, cfg.Import)

	if opts.DryRun {
		_, err := hintimport.Run(ctx, opts, nil, logger)
		return err
	}

	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	if cfg.Import.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := hint.New(pool, postgres.NewTxManager(pool))
	_, err = hintimport.Run(ctx, opts, repo, logger)
	return err
}
