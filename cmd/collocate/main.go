// Command collocate builds the collocation set from the vocabulary list and
// the curated pairing table. Pairs whose words are missing from the
// vocabulary are skipped; missing readings are derived with kagome.
//
// Flags:
//
//	-config  path to config YAML (optional; falls back to env)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/nihongo-hints/internal/app"
	"github.com/heartmarshall/nihongo-hints/internal/app/collocate"
	"github.com/heartmarshall/nihongo-hints/internal/config"
	"github.com/heartmarshall/nihongo-hints/internal/dataset"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML")
	flag.Parse()

	cfg, logger, closer, err := app.Setup("collocate", *configPath)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	if err := run(cfg, logger); err != nil {
		logger.Error("collocate failed", slog.String("error", err.Error()))
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	vocab, err := dataset.LoadVocabulary(cfg.Data.VocabularyPath)
	if err != nil {
		return err
	}
	table, err := collocate.LoadPairings(cfg.Collocate.PairingsPath)
	if err != nil {
		return err
	}

	var reader collocate.ReadingFinder
	if cfg.Collocate.FillReadings {
		kr, err := collocate.NewKagomeReader()
		if err != nil {
			return err
		}
		reader = kr
	}

	set, res := collocate.NewGenerator(reader, logger).Generate(vocab, table)
	if err := set.Validate(); err != nil {
		return err
	}
	if err := dataset.SaveCollocations(cfg.Data.CollocationsPath, set); err != nil {
		return err
	}

	logger.Info("collocations written",
		slog.String("path", cfg.Data.CollocationsPath),
		slog.Int("vocabulary", len(vocab)),
		slog.Int("pairings", table.Len()),
		slog.Int("action_words", res.ActionWords),
		slog.Int("pairs", res.Pairs),
		slog.Int("skipped_actions", res.SkippedActions),
		slog.Int("skipped_objects", res.SkippedObjects),
		slog.Int("readings_filled", res.ReadingsFilled),
	)
	return nil
}
