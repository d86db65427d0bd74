package hintgen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Progress describes how far a run has come, in action words.
type Progress struct {
	Processed int
	Total     int
	Hints     int
}

// Confirmer decides whether the pipeline continues after a batch.
type Confirmer interface {
	Continue(ctx context.Context, p Progress) (bool, error)
}

// AutoConfirmer always continues.
type AutoConfirmer struct{}

// Continue implements Confirmer.
func (AutoConfirmer) Continue(ctx context.Context, _ Progress) (bool, error) {
	return ctx.Err() == nil, nil
}

// StdinConfirmer asks the operator on a terminal. An empty line continues;
// "q" or "quit" (or end of input) stops the run.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer creates a confirmer reading answers from in and writing
// prompts to out.
func NewStdinConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

// Continue implements Confirmer.
func (c *StdinConfirmer) Continue(ctx context.Context, p Progress) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, nil
	}
	fmt.Fprintf(c.out, "\nProcessed %d/%d words (%d hints). Press Enter to continue or 'q' to quit: ", p.Processed, p.Total, p.Hints)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit":
		return false, nil
	default:
		return true, nil
	}
}
