package domain

import (
	"fmt"
	"maps"
	"slices"
)

// ActionEntry is an action word together with the words it collocates with,
// grouped by the type of the matched word.
type ActionEntry struct {
	WordEntry
	Matches map[WordType][]ObjectWord
}

// Nouns returns the noun matches in source order.
func (e ActionEntry) Nouns() []ObjectWord {
	return e.Matches[WordTypeNoun]
}

// CollocationSet is the in-memory form of the collocation JSON artifact.
type CollocationSet struct {
	Version     string
	GeneratedAt string
	Words       map[string]ActionEntry
}

// NewCollocationSet returns an empty set ready for Add.
func NewCollocationSet(version, generatedAt string) *CollocationSet {
	return &CollocationSet{
		Version:     version,
		GeneratedAt: generatedAt,
		Words:       make(map[string]ActionEntry),
	}
}

// ActionWords returns, in sorted order, every verb or adjective that has at
// least one noun match. The order is stable across runs so batch boundaries
// and checkpoints line up between invocations.
func (s *CollocationSet) ActionWords() []string {
	words := make([]string, 0, len(s.Words))
	for _, w := range slices.Sorted(maps.Keys(s.Words)) {
		e := s.Words[w]
		if e.Type.IsAction() && len(e.Nouns()) > 0 {
			words = append(words, w)
		}
	}
	return words
}

// Pairs returns every action→noun pair, action words sorted, nouns in source order.
func (s *CollocationSet) Pairs() []CollocationPair {
	var pairs []CollocationPair
	for _, w := range s.ActionWords() {
		for _, o := range s.Words[w].Nouns() {
			pairs = append(pairs, CollocationPair{ActionWord: w, ObjectWord: o.Word, Score: o.Score})
		}
	}
	return pairs
}

// TotalPairs counts action→noun pairs.
func (s *CollocationSet) TotalPairs() int {
	n := 0
	for _, w := range s.ActionWords() {
		n += len(s.Words[w].Nouns())
	}
	return n
}

// Validate checks the invariants the hint tools rely on. All problems are
// collected into a single *ValidationError.
func (s *CollocationSet) Validate() error {
	verr := &ValidationError{}
	if len(s.Words) == 0 {
		verr.Add("words", "no words")
		return verr
	}

	for _, key := range slices.Sorted(maps.Keys(s.Words)) {
		e := s.Words[key]
		path := "words." + key
		if e.Word == "" {
			verr.Add(path+".word", "required")
		} else if e.Word != key {
			verr.Add(path+".word", fmt.Sprintf("does not match key (got %q)", e.Word))
		}
		if !e.Type.IsValid() {
			verr.Add(path+".type", fmt.Sprintf("unknown word type %q", e.Type))
		}

		for _, mt := range slices.Sorted(maps.Keys(e.Matches)) {
			seen := make(map[string]bool, len(e.Matches[mt]))
			for i, o := range e.Matches[mt] {
				mpath := fmt.Sprintf("%s.matches.%ss[%d]", path, mt, i)
				if o.Word == "" {
					verr.Add(mpath+".word", "required")
					continue
				}
				if seen[o.Word] {
					verr.Add(mpath+".word", fmt.Sprintf("duplicate match %q", o.Word))
				}
				seen[o.Word] = true
				if o.Score < MinCollocationScore || o.Score > MaxCollocationScore {
					verr.Add(mpath+".score", fmt.Sprintf("must be in %d..%d (got %d)", MinCollocationScore, MaxCollocationScore, o.Score))
				}
			}
		}
	}
	return verr.OrNil()
}
