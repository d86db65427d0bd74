// Package hintgen generates collocation hints through a text-generation API.
// Runs are sequential and resumable: progress is checkpointed after every
// hint so an interrupted run continues where it stopped.
package hintgen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nihongo-hints/internal/dataset"
	"github.com/heartmarshall/nihongo-hints/internal/domain"
	"github.com/heartmarshall/nihongo-hints/pkg/ctxutil"
)

// Options configures a Pipeline.
type Options struct {
	CheckpointPath    string
	OutputPath        string
	ReverseOutputPath string // empty disables the reverse document
	SeedPath          string // optional hints document adopted before generating
	BatchSize         int
	RequestDelay      time.Duration
	MaxHintWords      int
	Style             PromptStyle
	Model             string
	Generator         string
}

// Result summarizes a pipeline run.
type Result struct {
	RunID          string
	WordsTotal     int
	WordsResumed   int
	WordsProcessed int
	PairsRequested int
	PairsReused    int
	PairsFailed    int
	// PairsMissing counts pairs of the set left without a hint. They belong
	// to words the checkpoint already lists as processed; supply them through
	// SeedPath.
	PairsMissing int
	Hints        int
	// Interrupted is set when the operator quit or the context was canceled.
	// The checkpoint is kept and the outputs are not written.
	Interrupted bool
}

type state int

const (
	stateStart state = iota
	stateResuming
	stateProcessingWord
	stateDone
	stateTerminated
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateResuming:
		return "resuming"
	case stateProcessingWord:
		return "processing_word"
	case stateDone:
		return "done"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Pipeline drives the generator over every noun pair of a collocation set.
type Pipeline struct {
	gen     TextGenerator
	confirm Confirmer
	opts    Options
	log     *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPipeline creates a Pipeline. Zero option values fall back to
// BatchSize 10 and MaxHintWords 8; a negative RequestDelay is treated as 0.
func NewPipeline(gen TextGenerator, confirm Confirmer, opts Options, log *slog.Logger) *Pipeline {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}
	if opts.MaxHintWords <= 0 {
		opts.MaxHintWords = DefaultMaxHintWords
	}
	if opts.RequestDelay < 0 {
		opts.RequestDelay = 0
	}
	if opts.Style == "" {
		opts.Style = StyleDirect
	}
	if confirm == nil {
		confirm = AutoConfirmer{}
	}
	return &Pipeline{
		gen:     gen,
		confirm: confirm,
		opts:    opts,
		log:     log,
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

// run holds the mutable state of one Run call.
type run struct {
	set     *domain.CollocationSet
	cp      *Checkpoint
	log     *slog.Logger
	res     Result
	calls   int
	st      state
	pending []string
}

func (r *run) enter(st state) {
	r.log.Debug("pipeline state", slog.String("from", r.st.String()), slog.String("to", st.String()))
	r.st = st
}

// Run processes every action word of set that the checkpoint does not list
// as done, in sorted order. Processed words are never requested again, and
// pairs already present in the checkpoint are reused. When all words are processed the forward (and reverse)
// hints are written and the checkpoint is deleted.
func (p *Pipeline) Run(ctx context.Context, set *domain.CollocationSet) (Result, error) {
	r := &run{set: set, log: p.log, st: stateStart}

	r.enter(stateResuming)
	cp, err := LoadCheckpoint(p.opts.CheckpointPath)
	if err != nil {
		return r.res, err
	}
	r.cp = cp

	runID, err := uuid.Parse(cp.RunID)
	if err != nil {
		runID = uuid.New()
		cp.RunID = runID.String()
	}
	ctx = ctxutil.WithRunID(ctx, runID)
	r.log = p.log.With(slog.String("run_id", ctxutil.RunIDString(ctx)))
	r.res.RunID = cp.RunID

	if p.opts.SeedPath != "" {
		seed, err := dataset.LoadHints(p.opts.SeedPath)
		if err != nil {
			return r.res, err
		}
		added := cp.Hints.Merge(seed.Hints)
		r.log.Info("seed hints adopted", slog.String("path", p.opts.SeedPath), slog.Int("added", added))
	}

	words := set.ActionWords()
	r.res.WordsTotal = len(words)
	for _, w := range words {
		if cp.IsProcessed(w) {
			r.res.WordsResumed++
			continue
		}
		r.pending = append(r.pending, w)
	}

	r.log.Info("pipeline started",
		slog.Int("words_total", r.res.WordsTotal),
		slog.Int("words_resumed", r.res.WordsResumed),
		slog.Int("words_pending", len(r.pending)),
		slog.Int("hints_in_checkpoint", cp.Hints.Count()),
	)

	for i, w := range r.pending {
		if ctx.Err() != nil {
			return p.interrupt(r, "context canceled")
		}

		r.enter(stateProcessingWord)
		if err := p.processWord(ctx, r, w, set.Words[w]); err != nil {
			if ctx.Err() != nil {
				return p.interrupt(r, "context canceled")
			}
			return r.res, err
		}

		done := i + 1
		if done%p.opts.BatchSize == 0 && done < len(r.pending) {
			ok, err := p.confirm.Continue(ctx, Progress{
				Processed: r.res.WordsResumed + done,
				Total:     r.res.WordsTotal,
				Hints:     cp.Hints.Count(),
			})
			if err != nil {
				return r.res, fmt.Errorf("confirm: %w", err)
			}
			if !ok {
				return p.interrupt(r, "stopped by operator")
			}
		}
	}

	r.enter(stateDone)
	if err := p.finish(r); err != nil {
		return r.res, err
	}
	r.enter(stateTerminated)

	r.log.Info("pipeline finished",
		slog.Int("words_processed", r.res.WordsProcessed),
		slog.Int("pairs_requested", r.res.PairsRequested),
		slog.Int("pairs_reused", r.res.PairsReused),
		slog.Int("pairs_failed", r.res.PairsFailed),
		slog.Int("pairs_missing", r.res.PairsMissing),
		slog.Int("hints", r.res.Hints),
	)
	return r.res, nil
}

func (p *Pipeline) processWord(ctx context.Context, r *run, word string, entry domain.ActionEntry) error {
	log := r.log.With(slog.String("action_word", word))
	nouns := entry.Nouns()
	log.Info("processing word", slog.Int("nouns", len(nouns)))

	for _, noun := range nouns {
		if r.cp.Hints.Has(word, noun.Word) {
			r.res.PairsReused++
			continue
		}

		if r.calls > 0 {
			if err := p.sleep(ctx, p.opts.RequestDelay); err != nil {
				return err
			}
		}
		r.calls++
		r.res.PairsRequested++

		prompt := BuildPrompt(p.opts.Style, entry.WordEntry, noun)
		text, err := p.gen.Generate(ctx, prompt)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}

		hint := ""
		if err == nil {
			hint = CleanResponse(text, p.opts.MaxHintWords)
		}
		if hint == "" {
			hint = FallbackHint(entry.English, noun.English)
			r.res.PairsFailed++
			log.Warn("hint generation failed, using fallback",
				slog.String("object_word", noun.Word),
				slog.String("fallback", hint),
				slog.Any("error", err),
			)
		} else {
			log.Debug("hint generated", slog.String("object_word", noun.Word), slog.String("hint", hint))
		}

		r.cp.Hints.Set(word, noun.Word, hint)
		if err := r.cp.Save(p.opts.CheckpointPath, p.now()); err != nil {
			return err
		}
	}

	r.cp.MarkProcessed(word)
	r.res.WordsProcessed++
	return r.cp.Save(p.opts.CheckpointPath, p.now())
}

func (p *Pipeline) interrupt(r *run, reason string) (Result, error) {
	r.res.Interrupted = true
	r.res.Hints = r.cp.Hints.Count()
	r.enter(stateTerminated)
	r.log.Warn("pipeline interrupted, checkpoint kept",
		slog.String("reason", reason),
		slog.String("checkpoint", p.opts.CheckpointPath),
		slog.Int("words_processed", r.res.WordsResumed+r.res.WordsProcessed),
		slog.Int("words_total", r.res.WordsTotal),
	)
	return r.res, nil
}

func (p *Pipeline) finish(r *run) error {
	forward := r.cp.Hints
	r.res.Hints = forward.Count()

	missing := forward.Missing(r.set)
	r.res.PairsMissing = len(missing)
	for _, m := range missing {
		r.log.Warn("pair without a hint",
			slog.String("action_word", m.ActionWord),
			slog.String("object_word", m.ObjectWord),
		)
	}
	date := p.now().UTC().Format(time.DateOnly)

	if err := dataset.WriteHints(p.opts.OutputPath, dataset.HintsDocument{
		GeneratedDate: date,
		Generator:     p.opts.Generator,
		Model:         p.opts.Model,
		Mode:          "forward",
		Description:   "actionWord → objectWord hints (" + string(p.opts.Style) + " style)",
		Hints:         forward,
	}); err != nil {
		return err
	}
	r.log.Info("forward hints written", slog.String("path", p.opts.OutputPath), slog.Int("hints", forward.Count()))

	if p.opts.ReverseOutputPath != "" {
		reverse := DeriveReverse(forward)
		if err := dataset.WriteHints(p.opts.ReverseOutputPath, dataset.HintsDocument{
			GeneratedDate: date,
			Generator:     p.opts.Generator,
			Model:         p.opts.Model,
			Mode:          "reverse",
			Description:   "objectWord → actionWord hints reusing the forward text",
			Hints:         reverse,
		}); err != nil {
			return err
		}
		r.log.Info("reverse hints written", slog.String("path", p.opts.ReverseOutputPath), slog.Int("hints", reverse.Count()))
	}

	return DeleteCheckpoint(p.opts.CheckpointPath)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
