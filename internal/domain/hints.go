package domain

import (
	"maps"
	"slices"
)

// HintSet maps actionWord → objectWord → hint phrase.
// For reverse sets the outer key is the object word instead.
type HintSet map[string]map[string]string

// Set records a hint, replacing any previous one for the pair.
func (h HintSet) Set(outer, inner, hint string) {
	m, ok := h[outer]
	if !ok {
		m = make(map[string]string)
		h[outer] = m
	}
	m[inner] = hint
}

// Get returns the hint for a pair.
func (h HintSet) Get(outer, inner string) (string, bool) {
	hint, ok := h[outer][inner]
	return hint, ok
}

// Has reports whether a hint exists for the pair.
func (h HintSet) Has(outer, inner string) bool {
	_, ok := h[outer][inner]
	return ok
}

// Count returns the number of pairs with a hint.
func (h HintSet) Count() int {
	n := 0
	for _, m := range h {
		n += len(m)
	}
	return n
}

// Merge copies hints from other that are not yet present in h.
// Existing entries are never overwritten. Returns the number of hints added.
func (h HintSet) Merge(other HintSet) int {
	added := 0
	for outer, m := range other {
		for inner, hint := range m {
			if h.Has(outer, inner) {
				continue
			}
			h.Set(outer, inner, hint)
			added++
		}
	}
	return added
}

// Reverse swaps the key order: the result maps objectWord → actionWord → hint.
func (h HintSet) Reverse() HintSet {
	out := make(HintSet, len(h))
	for outer, m := range h {
		for inner, hint := range m {
			out.Set(inner, outer, hint)
		}
	}
	return out
}

// Clone returns a deep copy.
func (h HintSet) Clone() HintSet {
	out := make(HintSet, len(h))
	for outer, m := range h {
		out[outer] = maps.Clone(m)
	}
	return out
}

// Missing returns the pairs of set that have no hint in h, in set order.
func (h HintSet) Missing(set *CollocationSet) []CollocationPair {
	var missing []CollocationPair
	for _, p := range set.Pairs() {
		if !h.Has(p.ActionWord, p.ObjectWord) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Keys returns the outer keys sorted.
func (h HintSet) Keys() []string {
	return slices.Sorted(maps.Keys(h))
}
