package hintgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/heartmarshall/nihongo-hints/internal/dataset"
	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// Checkpoint is the resume point of a pipeline run. It is rewritten after
// every generated hint and every completed action word.
type Checkpoint struct {
	RunID          string         `json:"run_id,omitempty"`
	ProcessedWords []string       `json:"processed_words"`
	Hints          domain.HintSet `json:"hints"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewCheckpoint returns an empty checkpoint.
func NewCheckpoint() *Checkpoint {
	return &Checkpoint{ProcessedWords: []string{}, Hints: domain.HintSet{}}
}

// LoadCheckpoint reads the checkpoint at path. A missing file yields an
// empty checkpoint; a corrupt file is an error.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	cp := NewCheckpoint()
	if err := dataset.ReadJSON(path, cp); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewCheckpoint(), nil
		}
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}
	if cp.Hints == nil {
		cp.Hints = domain.HintSet{}
	}
	if cp.ProcessedWords == nil {
		cp.ProcessedWords = []string{}
	}
	return cp, nil
}

// Save writes the checkpoint atomically.
func (c *Checkpoint) Save(path string, now time.Time) error {
	c.UpdatedAt = now.UTC()
	if err := dataset.WriteJSON(path, c); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

// IsProcessed reports whether word was fully processed.
func (c *Checkpoint) IsProcessed(word string) bool {
	return slices.Contains(c.ProcessedWords, word)
}

// MarkProcessed records word as fully processed.
func (c *Checkpoint) MarkProcessed(word string) {
	if !c.IsProcessed(word) {
		c.ProcessedWords = append(c.ProcessedWords, word)
	}
}

// DeleteCheckpoint removes the checkpoint file. A missing file is not an error.
func DeleteCheckpoint(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	return nil
}
