package classifier

import (
	"slices"
	"strings"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

const (
	// MaxLabelWords caps the length of a hint label.
	MaxLabelWords = 8
	// MinLabelWords is the shortest label considered specific enough.
	MinLabelWords = 2
	// DefaultLabel is used when neither a label nor its fallback survive cleaning.
	DefaultLabel = "related words"
)

// Denylist holds generic terms that never appear in a cleaned label.
var Denylist = []string{
	"things", "thing", "various", "general", "stuff", "items",
	"misc", "other", "common", "something",
}

// substitutions rewrite generic phrasings into specific ones. They are
// applied in order on whole words before denylisted words are dropped.
var substitutions = []struct{ from, to string }{
	{"things that exist", "what exists"},
	{"things given", "gifts given"},
	{"things received", "what you receive"},
	{"things approaching", "what is approaching"},
	{"things awaited", "what you await"},
	{"things borrowed", "what you borrow"},
	{"things dispatched", "what you send"},
	{"things taken", "what you take"},
	{"things you", "what you"},
	{"things that", "what"},
	{"things to", "what to"},
	{"various activities", "everyday activities"},
	{"various people", "people you meet"},
	{"common beverages", "everyday drinks"},
	{"other people", "people around you"},
	{"general items", "everyday objects"},
	{"misc items", "everyday objects"},
}

// CleanLabel normalizes label into a 2..8 word phrase without denylisted
// terms. When label cannot be rescued, fallback is cleaned instead, and
// DefaultLabel is returned when that fails too.
func CleanLabel(label, fallback string) string {
	if l, ok := cleanLabel(label); ok {
		return l
	}
	if l, ok := cleanLabel(fallback); ok {
		return l
	}
	return DefaultLabel
}

func cleanLabel(label string) (string, bool) {
	s := domain.NormalizeText(stripBrackets(label))
	if s == "" {
		return "", false
	}

	padded := " " + s + " "
	for _, sub := range substitutions {
		padded = strings.ReplaceAll(padded, " "+sub.from+" ", " "+sub.to+" ")
	}

	words := strings.Fields(padded)
	kept := words[:0]
	for _, w := range words {
		if IsDenylisted(w) {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) > MaxLabelWords {
		kept = kept[:MaxLabelWords]
	}
	if len(kept) < MinLabelWords || !slices.ContainsFunc(kept, isContentWord) {
		return "", false
	}
	return strings.Join(kept, " "), true
}

// frameWords build the "what you X" / "what is X" frame and carry no meaning
// on their own.
var frameWords = []string{"what", "is", "you", "to"}

func isContentWord(w string) bool {
	return !slices.Contains(frameWords, strings.ToLower(w))
}

// IsDenylisted reports whether word is a generic term. Surrounding
// punctuation is ignored.
func IsDenylisted(word string) bool {
	w := strings.Trim(strings.ToLower(word), ".,;:!?'\"")
	return slices.Contains(Denylist, w)
}

// stripBrackets removes bracketed annotations such as "(formal)", "[n]",
// "{x}" and "【注】". Unbalanced brackets are dropped as characters.
func stripBrackets(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for _, r := range s {
		switch r {
		case '(', '[', '{', '【', '（':
			depth++
		case ')', ']', '}', '】', '）':
			if depth > 0 {
				depth--
			}
			b.WriteRune(' ')
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// FallbackLabel builds a label from the action word's own gloss:
// "to drink" becomes "what you drink", "big" becomes "what is big".
// A gloss made only of denylisted words ("common") yields DefaultLabel.
func FallbackLabel(actionGloss string) string {
	g := domain.FirstGloss(actionGloss)
	if i := strings.IndexByte(g, ','); i >= 0 {
		g = strings.TrimSpace(g[:i])
	}
	g = strings.TrimSpace(stripBrackets(g))

	prefix := "what is "
	if rest, ok := strings.CutPrefix(g, "to "); ok {
		prefix, g = "what you ", rest
	}
	var content []string
	for _, w := range strings.Fields(g) {
		if !IsDenylisted(w) {
			content = append(content, w)
		}
	}
	if len(content) == 0 {
		return DefaultLabel
	}
	return prefix + strings.Join(content, " ")
}
