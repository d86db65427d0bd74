// Command hintgen generates a natural-language hint for every action→noun
// pair through the Anthropic Messages API. Progress is checkpointed after
// every pair, so an interrupted run (operator quit, Ctrl+C) resumes where it
// stopped.
//
// Flags:
//
//	-config  path to config YAML (optional; falls back to env)
//
// Exit codes: 0 = success or clean interruption, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/nihongo-hints/internal/app"
	"github.com/heartmarshall/nihongo-hints/internal/app/hintgen"
	"github.com/heartmarshall/nihongo-hints/internal/config"
	"github.com/heartmarshall/nihongo-hints/internal/dataset"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML")
	flag.Parse()

	cfg, logger, closer, err := app.Setup("hintgen", *configPath)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("hintgen failed", slog.String("error", err.Error()))
		stop()
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.RequireLLM(); err != nil {
		return err
	}

	set, err := dataset.LoadCollocations(cfg.Data.CollocationsPath)
	if err != nil {
		return err
	}

	gen := hintgen.NewAnthropicGenerator(cfg.LLM)

	var confirm hintgen.Confirmer = hintgen.AutoConfirmer{}
	if cfg.HintGen.Interactive {
		confirm = hintgen.NewStdinConfirmer(os.Stdin, os.Stdout)
	}

	opts := hintgen.Options{
		CheckpointPath: cfg.HintGen.CheckpointPath,
		OutputPath:     cfg.Data.HintsPath,
		SeedPath:       cfg.HintGen.SeedPath,
		BatchSize:      cfg.HintGen.BatchSize,
		RequestDelay:   cfg.HintGen.RequestDelay,
		MaxHintWords:   cfg.HintGen.MaxHintWords,
		Style:          hintgen.PromptStyle(cfg.HintGen.PromptStyle),
		Model:          gen.Model(),
		Generator:      "hintgen",
	}
	if cfg.HintGen.WriteReverse {
		opts.ReverseOutputPath = cfg.Data.ReverseHintsPath
	}

	res, err := hintgen.NewPipeline(gen, confirm, opts, logger).Run(ctx, set)
	if err != nil {
		return err
	}

	logger.Info("hintgen finished",
		slog.String("run_id", res.RunID),
		slog.Bool("interrupted", res.Interrupted),
		slog.Int("words_total", res.WordsTotal),
		slog.Int("words_resumed", res.WordsResumed),
		slog.Int("words_processed", res.WordsProcessed),
		slog.Int("pairs_requested", res.PairsRequested),
		slog.Int("pairs_reused", res.PairsReused),
		slog.Int("pairs_failed", res.PairsFailed),
		slog.Int("pairs_missing", res.PairsMissing),
		slog.Int("hints", res.Hints),
	)
	return nil
}
