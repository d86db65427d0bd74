// Command classify labels every action→noun pair of a collocation set with
// rule-based category hints and writes the forward (and optionally reverse)
// hints documents.
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
	"time"

	"github.com/heartmarshall/nihongo-hints/internal/app"
	"github.com/heartmarshall/nihongo-hints/internal/app/classifier"
	"github.com/heartmarshall/nihongo-hints/internal/dataset"
	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML")
	flag.Parse()

	cfg, logger, closer, err := app.Setup("classify", *configPath)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	if err := run(cfg.Data.CollocationsPath, cfg.Data.HintsPath, reversePath(cfg.HintGen.WriteReverse, cfg.Data.ReverseHintsPath), logger); err != nil {
		logger.Error("classify failed", slog.String("error", err.Error()))
		closer.Close()
		os.Exit(1)
	}
}

func reversePath(enabled bool, path string) string {
	if !enabled {
		return ""
	}
	return path
}

func run(collocationsPath, outputPath, reverseOutputPath string, logger *slog.Logger) error {
	set, err := dataset.LoadCollocations(collocationsPath)
	if err != nil {
		return err
	}

	c := classifier.New()
	hints := c.ClassifySet(set)

	overridden := 0
	for _, w := range set.ActionWords() {
		if c.HasOverride(w) {
			overridden++
		}
	}

	date := time.Now().UTC().Format(time.DateOnly)
	if err := dataset.WriteHints(outputPath, dataset.HintsDocument{
		GeneratedDate: date,
		Generator:     "classify",
		Mode:          string(domain.HintDirectionForward),
		Description:   "rule-based category labels, actionWord → objectWord",
		Hints:         hints,
	}); err != nil {
		return err
	}

	if reverseOutputPath != "" {
		if err := dataset.WriteHints(reverseOutputPath, dataset.HintsDocument{
			GeneratedDate: date,
			Generator:     "classify",
			Mode:          string(domain.HintDirectionReverse),
			Description:   "rule-based category labels, objectWord → actionWord",
			Hints:         hints.Reverse(),
		}); err != nil {
			return err
		}
	}

	st := classifier.ComputeStats(hints, 10)
	logger.Info("classification complete",
		slog.String("output", outputPath),
		slog.Int("action_words", st.ActionWords),
		slog.Int("pairs", st.Pairs),
		slog.Int("distinct_labels", st.DistinctLabels),
		slog.Int("words_with_overrides", overridden),
	)
	for _, lc := range st.TopLabels {
		logger.Debug("label usage", slog.String("label", lc.Label), slog.Int("pairs", lc.Count))
	}
	if len(st.SingleLabelWords) > 0 {
		logger.Warn("action words with a single label for every object",
			slog.Int("count", len(st.SingleLabelWords)),
			slog.Any("words", st.SingleLabelWords),
		)
	}
	return nil
}
