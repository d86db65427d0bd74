package domain

import (
	"maps"
	"slices"
	"time"
)

// HintRecord is one published hint. ActionWord and ObjectWord always name the
// collocation the same way; Direction says which side the learner sees.
type HintRecord struct {
	Direction  HintDirection
	ActionWord string
	ObjectWord string
	Hint       string
	Source     string
	UpdatedAt  time.Time
}

// HintRecords flattens a hint set into records in key order. For the reverse
// direction the set is keyed by object word first.
func HintRecords(dir HintDirection, hints HintSet, source string, now time.Time) []HintRecord {
	records := make([]HintRecord, 0, hints.Count())
	for _, outer := range hints.Keys() {
		inner := hints[outer]
		for _, in := range slices.Sorted(maps.Keys(inner)) {
			r := HintRecord{
				Direction:  dir,
				ActionWord: outer,
				ObjectWord: in,
				Hint:       inner[in],
				Source:     source,
				UpdatedAt:  now,
			}
			if dir == HintDirectionReverse {
				r.ActionWord, r.ObjectWord = in, outer
			}
			records = append(records, r)
		}
	}
	return records
}
