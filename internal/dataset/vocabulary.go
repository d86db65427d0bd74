package dataset

import (
	"fmt"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

type vocabularyFile struct {
	Vocabulary []vocabularyWord `json:"vocabulary"`
}

type vocabularyWord struct {
	ID        int    `json:"id,omitempty"`
	Japanese  string `json:"japanese"`
	Reading   string `json:"reading"`
	English   string `json:"english"`
	Type      string `json:"type"`
	Frequency string `json:"frequency,omitempty"`
}

// LoadVocabulary reads the application's vocabulary list. Words are
// NFKC-normalized. Entries whose type is not verb, noun or adjective are
// kept with their raw type; callers filter with WordType.IsValid.
func LoadVocabulary(path string) ([]domain.WordEntry, error) {
	var f vocabularyFile
	if err := ReadJSON(path, &f); err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	verr := &domain.ValidationError{}
	entries := make([]domain.WordEntry, 0, len(f.Vocabulary))
	for i, w := range f.Vocabulary {
		word := domain.NormalizeWord(w.Japanese)
		if word == "" {
			verr.Add(fmt.Sprintf("vocabulary[%d].japanese", i), "required")
			continue
		}
		entries = append(entries, domain.WordEntry{
			Word:    word,
			Reading: domain.NormalizeWord(w.Reading),
			English: w.English,
			Type:    domain.WordType(w.Type),
		})
	}
	if err := verr.OrNil(); err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}
	return entries, nil
}
