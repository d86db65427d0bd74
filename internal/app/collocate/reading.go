package collocate

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// ReadingFinder produces a hiragana reading for a headword, or "" when it
// cannot.
type ReadingFinder interface {
	Reading(word string) string
}

// KagomeReader derives readings from the IPA dictionary.
type KagomeReader struct {
	t *tokenizer.Tokenizer
}

// NewKagomeReader builds a tokenizer over the embedded IPA dictionary.
func NewKagomeReader() (*KagomeReader, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("create tokenizer: %w", err)
	}
	return &KagomeReader{t: t}, nil
}

// Reading concatenates the readings of every token in word. If any token is
// unknown to the dictionary the whole reading is discarded.
func (r *KagomeReader) Reading(word string) string {
	var b strings.Builder
	for _, tok := range r.t.Tokenize(word) {
		if tok.Class == tokenizer.DUMMY || strings.TrimSpace(tok.Surface) == "" {
			continue
		}
		// IPA features: 7 is the katakana reading.
		features := tok.Features()
		if len(features) <= 7 || features[7] == "*" {
			return ""
		}
		b.WriteString(features[7])
	}
	return ToHiragana(b.String())
}

// ToHiragana maps katakana ァ..ヶ to hiragana. The long vowel mark and
// everything else pass through.
func ToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - ('ァ' - 'ぁ')
		}
		return r
	}, s)
}
