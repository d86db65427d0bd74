package hintgen

import (
	"strings"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// DefaultMaxHintWords caps the length of a generated hint.
const DefaultMaxHintWords = 8

var quotePairs = [][2]string{
	{`"`, `"`},
	{`'`, `'`},
	{"“", "”"},
	{"「", "」"},
	{"`", "`"},
}

// CleanResponse turns a raw completion into a hint: first non-empty line,
// outer quotes removed, trailing punctuation trimmed, whitespace collapsed,
// truncated to maxWords words.
func CleanResponse(text string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = DefaultMaxHintWords
	}

	line := ""
	for l := range strings.Lines(text) {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}

	for _, q := range quotePairs {
		if len(line) >= len(q[0])+len(q[1]) && strings.HasPrefix(line, q[0]) && strings.HasSuffix(line, q[1]) {
			line = strings.TrimSpace(line[len(q[0]) : len(line)-len(q[1])])
			break
		}
	}
	line = strings.TrimRight(line, ".,;:!?。、")

	words := strings.Fields(line)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}

// FallbackHint is the deterministic hint used when a request fails:
// the first gloss clause of the action followed by that of the object,
// e.g. "to drink" and "water" give "to drink water".
func FallbackHint(actionGloss, objectGloss string) string {
	return strings.TrimSpace(domain.FirstGloss(actionGloss) + " " + domain.FirstGloss(objectGloss))
}
