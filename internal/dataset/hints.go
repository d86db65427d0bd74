package dataset

import (
	"fmt"
	"maps"
	"slices"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// HintsVersion is written into every hints document.
const HintsVersion = "1.0.0"

// HintsDocument is the envelope of a final hints file. Hints are keyed
// actionWord → objectWord for forward documents and the other way round
// for reverse documents.
type HintsDocument struct {
	Version       string         `json:"version"`
	GeneratedDate string         `json:"generated_date"`
	Generator     string         `json:"generator,omitempty"`
	Model         string         `json:"model,omitempty"`
	Mode          string         `json:"mode,omitempty"`
	Description   string         `json:"description,omitempty"`
	TotalWords    int            `json:"total_words"`
	TotalPairs    int            `json:"total_pairs"`
	Hints         domain.HintSet `json:"hints"`
}

// WriteHints fills in the totals of doc and writes it to path.
func WriteHints(path string, doc HintsDocument) error {
	if doc.Version == "" {
		doc.Version = HintsVersion
	}
	if doc.Hints == nil {
		doc.Hints = domain.HintSet{}
	}
	doc.TotalWords = len(doc.Hints)
	doc.TotalPairs = doc.Hints.Count()

	if err := WriteJSON(path, doc); err != nil {
		return fmt.Errorf("write hints: %w", err)
	}
	return nil
}

// LoadHints reads a hints document. Empty words and empty hint texts are
// rejected with a validation error.
func LoadHints(path string) (*HintsDocument, error) {
	var doc HintsDocument
	if err := ReadJSON(path, &doc); err != nil {
		return nil, fmt.Errorf("load hints: %w", err)
	}
	if doc.Hints == nil {
		doc.Hints = domain.HintSet{}
	}

	verr := &domain.ValidationError{}
	for _, outer := range doc.Hints.Keys() {
		if domain.NormalizeWord(outer) == "" {
			verr.Add("hints", "empty word key")
			continue
		}
		for _, inner := range slices.Sorted(maps.Keys(doc.Hints[outer])) {
			hint := doc.Hints[outer][inner]
			field := fmt.Sprintf("hints.%s.%s", outer, inner)
			if domain.NormalizeWord(inner) == "" {
				verr.Add(field, "empty word key")
			}
			if domain.NormalizeText(hint) == "" {
				verr.Add(field, "empty hint")
			}
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, fmt.Errorf("load hints %s: %w", path, err)
	}
	return &doc, nil
}
