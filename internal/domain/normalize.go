package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares an English gloss for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeWord canonicalises a Japanese headword: NFKC folds half-width kana
// and full-width ASCII, then surrounding whitespace (including U+3000) is trimmed.
// Kana/kanji spelling is not touched; 飲む and のむ stay distinct words.
func NormalizeWord(word string) string {
	return strings.TrimSpace(norm.NFKC.String(word))
}

// FirstGloss returns the first ";"-separated clause of a gloss, normalised.
// "work; job" → "work", "to drink; to swallow" → "to drink".
// Commas are kept: "to put on (lower-body clothing), to wear" stays one clause.
func FirstGloss(gloss string) string {
	if i := strings.IndexByte(gloss, ';'); i >= 0 {
		gloss = gloss[:i]
	}
	return NormalizeText(gloss)
}
