package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// collocationFile is the on-disk collocation schema. Older files use
// "generated_date" and "collocations"; both are accepted on read.
type collocationFile struct {
	Version       string                     `json:"version"`
	GeneratedAt   string                     `json:"generatedAt,omitempty"`
	GeneratedDate string                     `json:"generated_date,omitempty"`
	TotalWords    int                        `json:"totalWords"`
	TotalPairs    int                        `json:"totalPairs"`
	Words         map[string]collocationWord `json:"words,omitempty"`
	Collocations  map[string]collocationWord `json:"collocations,omitempty"`
}

type collocationWord struct {
	Word    string  `json:"word"`
	Reading string  `json:"reading"`
	English string  `json:"english"`
	Type    string  `json:"type"`
	Matches matches `json:"matches"`
}

type match struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	English string `json:"english"`
	Score   int    `json:"score"`
}

type matches struct {
	Nouns      []match `json:"nouns,omitempty"`
	Verbs      []match `json:"verbs,omitempty"`
	Adjectives []match `json:"adjectives,omitempty"`
}

// UnmarshalJSON accepts both the keyed form {"nouns": [...]} and the flat
// list form, which always lists nouns.
func (m *matches) UnmarshalJSON(data []byte) error {
	var flat []match
	if err := json.Unmarshal(data, &flat); err == nil {
		m.Nouns = flat
		return nil
	}

	type keyed matches
	var k keyed
	if err := json.Unmarshal(data, &k); err != nil {
		return err
	}
	*m = matches(k)
	return nil
}

// LoadCollocations reads a collocation set and validates it. A missing file,
// malformed JSON or an invalid record is an error.
func LoadCollocations(path string) (*domain.CollocationSet, error) {
	var f collocationFile
	if err := ReadJSON(path, &f); err != nil {
		return nil, fmt.Errorf("load collocations: %w", err)
	}

	words := f.Words
	if len(words) == 0 {
		words = f.Collocations
	}
	generatedAt := f.GeneratedAt
	if generatedAt == "" {
		generatedAt = f.GeneratedDate
	}

	set := domain.NewCollocationSet(f.Version, generatedAt)
	for key, w := range words {
		key = domain.NormalizeWord(key)
		word := domain.NormalizeWord(w.Word)
		if word == "" {
			word = key
		}
		entry := domain.ActionEntry{
			WordEntry: domain.WordEntry{
				Word:    word,
				Reading: w.Reading,
				English: w.English,
				Type:    domain.WordType(w.Type),
			},
			Matches: make(map[domain.WordType][]domain.ObjectWord),
		}
		addMatches(entry.Matches, domain.WordTypeNoun, w.Matches.Nouns)
		addMatches(entry.Matches, domain.WordTypeVerb, w.Matches.Verbs)
		addMatches(entry.Matches, domain.WordTypeAdjective, w.Matches.Adjectives)
		set.Words[key] = entry
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("load collocations %s: %w", path, err)
	}
	return set, nil
}

func addMatches(dst map[domain.WordType][]domain.ObjectWord, t domain.WordType, src []match) {
	if len(src) == 0 {
		return
	}
	out := make([]domain.ObjectWord, 0, len(src))
	for _, m := range src {
		out = append(out, domain.ObjectWord{
			Word:    domain.NormalizeWord(m.Word),
			Reading: m.Reading,
			English: m.English,
			Score:   m.Score,
		})
	}
	dst[t] = out
}

// SaveCollocations writes set in the collocation schema with computed totals.
func SaveCollocations(path string, set *domain.CollocationSet) error {
	f := collocationFile{
		Version:     set.Version,
		GeneratedAt: set.GeneratedAt,
		TotalWords:  len(set.Words),
		TotalPairs:  set.TotalPairs(),
		Words:       make(map[string]collocationWord, len(set.Words)),
	}
	for key, e := range set.Words {
		f.Words[key] = collocationWord{
			Word:    e.Word,
			Reading: e.Reading,
			English: e.English,
			Type:    string(e.Type),
			Matches: matches{
				Nouns:      toMatches(e.Matches[domain.WordTypeNoun]),
				Verbs:      toMatches(e.Matches[domain.WordTypeVerb]),
				Adjectives: toMatches(e.Matches[domain.WordTypeAdjective]),
			},
		}
	}
	if err := WriteJSON(path, f); err != nil {
		return fmt.Errorf("save collocations: %w", err)
	}
	return nil
}

func toMatches(objs []domain.ObjectWord) []match {
	if len(objs) == 0 {
		return nil
	}
	out := make([]match, 0, len(objs))
	for _, o := range objs {
		out = append(out, match{Word: o.Word, Reading: o.Reading, English: o.English, Score: o.Score})
	}
	return out
}
