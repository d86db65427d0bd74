// Package hintimport publishes a finished hints document into PostgreSQL.
package hintimport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/nihongo-hints/internal/config"
	"github.com/heartmarshall/nihongo-hints/internal/dataset"
	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// HintRepo is the storage the importer writes to.
type HintRepo interface {
	UpsertAll(ctx context.Context, records []domain.HintRecord, batchSize int) (int, error)
	ReplaceDirection(ctx context.Context, dir domain.HintDirection, records []domain.HintRecord, batchSize int) (deleted, written int, err error)
}

// Options selects what to import and how.
type Options struct {
	Path      string
	Direction domain.HintDirection
	Source    string
	BatchSize int
	DryRun    bool
	Replace   bool
}

// OptionsFromConfig picks the input file that matches the configured direction.
func OptionsFromConfig(data config.DataConfig, cfg config.ImportConfig) Options {
	dir := domain.HintDirection(cfg.Direction)
	path := data.HintsPath
	if dir == domain.HintDirectionReverse {
		path = data.ReverseHintsPath
	}
	return Options{
		Path:      path,
		Direction: dir,
		Source:    cfg.Source,
		BatchSize: cfg.BatchSize,
		DryRun:    cfg.DryRun,
		Replace:   cfg.Replace,
	}
}

// Result holds import statistics.
type Result struct {
	Records int
	Written int
	Deleted int
	Skipped int
}

// Run loads the hints document at opts.Path and upserts it. In dry-run mode
// the document is validated and counted but nothing is written.
func Run(ctx context.Context, opts Options, repo HintRepo, log *slog.Logger) (Result, error) {
	if !opts.Direction.IsValid() {
		return Result{}, fmt.Errorf("import: %w: unknown direction %q", domain.ErrValidation, opts.Direction)
	}

	doc, err := dataset.LoadHints(opts.Path)
	if err != nil {
		return Result{}, err
	}

	source := opts.Source
	if source == "" {
		source = doc.Generator
	}
	records := domain.HintRecords(opts.Direction, doc.Hints, source, time.Now().UTC())

	result := Result{Records: len(records)}
	log.Info("hints loaded",
		slog.String("path", opts.Path),
		slog.String("direction", string(opts.Direction)),
		slog.String("version", doc.Version),
		slog.Int("records", len(records)),
	)

	if opts.DryRun {
		log.Info("dry-run mode: no DB writes")
		return result, nil
	}

	if opts.Replace {
		result.Deleted, result.Written, err = repo.ReplaceDirection(ctx, opts.Direction, records, opts.BatchSize)
	} else {
		result.Written, err = repo.UpsertAll(ctx, records, opts.BatchSize)
	}
	if err != nil {
		return Result{Records: len(records)}, fmt.Errorf("import %s hints: %w", opts.Direction, err)
	}
	result.Skipped = len(records) - result.Written

	log.Info("hints-import complete",
		slog.Int("records", result.Records),
		slog.Int("written", result.Written),
		slog.Int("deleted", result.Deleted),
		slog.Int("unchanged", result.Skipped),
	)
	return result, nil
}
