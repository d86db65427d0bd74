// Package classifier assigns short semantic-category hints to the objects
// an action word collocates with, using curated keyword rules.
package classifier

import (
	"cmp"
	"maps"
	"slices"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// Object is an object word paired with an action word.
type Object struct {
	Word    string
	English string
}

// Classifier labels objects with per-word override tables, falling back to a
// global table for action words without one. It is safe for concurrent use.
type Classifier struct {
	overrides map[string]RuleSet
	global    RuleSet
}

// New returns a Classifier backed by the default tables.
func New() *Classifier {
	return NewWithTables(DefaultOverrides(), DefaultGlobal())
}

// NewWithTables returns a Classifier backed by the given tables.
func NewWithTables(overrides map[string]RuleSet, global RuleSet) *Classifier {
	return &Classifier{overrides: overrides, global: global}
}

// HasOverride reports whether actionWord has a curated rule set.
func (c *Classifier) HasOverride(actionWord string) bool {
	_, ok := c.overrides[domain.NormalizeWord(actionWord)]
	return ok
}

// Classify returns a hint for every object, keyed by object word. Every
// object receives a non-empty label; the result is deterministic for a
// given input.
func (c *Classifier) Classify(actionWord, actionGloss string, objects []Object) map[string]string {
	fallback := FallbackLabel(actionGloss)

	rs, ok := c.overrides[domain.NormalizeWord(actionWord)]
	if !ok {
		rs = c.global
	}
	catchAll := fallback
	if rs.Fallback != "" {
		catchAll = rs.Fallback
	}

	out := make(map[string]string, len(objects))
	for _, o := range objects {
		label, matched := rs.Match(o.English)
		if !matched {
			label = catchAll
		}
		out[o.Word] = CleanLabel(label, fallback)
	}
	return out
}

// ClassifySet labels every noun pair of every action word in set.
func (c *Classifier) ClassifySet(set *domain.CollocationSet) domain.HintSet {
	hints := make(domain.HintSet)
	for _, w := range set.ActionWords() {
		entry := set.Words[w]
		nouns := entry.Nouns()
		objects := make([]Object, 0, len(nouns))
		for _, n := range nouns {
			objects = append(objects, Object{Word: n.Word, English: n.English})
		}
		for obj, label := range c.Classify(w, entry.English, objects) {
			hints.Set(w, obj, label)
		}
	}
	return hints
}

// LabelCount is a label with the number of pairs it was assigned to.
type LabelCount struct {
	Label string
	Count int
}

// Stats summarizes a classified hint set.
type Stats struct {
	ActionWords    int
	Pairs          int
	DistinctLabels int
	// SingleLabelWords lists action words whose objects all share one label.
	SingleLabelWords []string
	TopLabels        []LabelCount
}

// ComputeStats returns label usage statistics for hints, listing at most
// top most reused labels.
func ComputeStats(hints domain.HintSet, top int) Stats {
	counts := make(map[string]int)
	st := Stats{ActionWords: len(hints), Pairs: hints.Count()}

	for _, w := range hints.Keys() {
		labels := make(map[string]struct{})
		for _, label := range hints[w] {
			counts[label]++
			labels[label] = struct{}{}
		}
		if len(labels) == 1 && len(hints[w]) > 1 {
			st.SingleLabelWords = append(st.SingleLabelWords, w)
		}
	}
	st.DistinctLabels = len(counts)

	for _, label := range slices.Sorted(maps.Keys(counts)) {
		st.TopLabels = append(st.TopLabels, LabelCount{Label: label, Count: counts[label]})
	}
	slices.SortStableFunc(st.TopLabels, func(a, b LabelCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if top >= 0 && len(st.TopLabels) > top {
		st.TopLabels = st.TopLabels[:top]
	}
	return st
}
