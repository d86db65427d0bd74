package classifier

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// Rule assigns Label to any gloss that contains one of Keywords as a whole
// word. Lower Priority values are tested first.
type Rule struct {
	Priority int
	Keywords []string
	Label    string
}

// RuleSet is an ordered list of rules. The first matching rule wins.
// Fallback, when set, labels glosses that match no rule.
type RuleSet struct {
	Rules    []Rule
	Fallback string
}

// NewRuleSet returns a RuleSet with rules ordered by Priority. Rules with
// equal priority keep their declaration order.
func NewRuleSet(fallback string, rules ...Rule) RuleSet {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b Rule) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	for i := range sorted {
		keywords := make([]string, len(sorted[i].Keywords))
		for j, kw := range sorted[i].Keywords {
			keywords[j] = tokenize(kw)
		}
		sorted[i].Keywords = keywords
	}
	return RuleSet{Rules: sorted, Fallback: fallback}
}

// Match returns the label of the first rule matching gloss. Only the first
// semicolon-separated clause of gloss is considered.
func (rs RuleSet) Match(gloss string) (string, bool) {
	text := " " + tokenize(domain.FirstGloss(gloss)) + " "
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	for _, r := range rs.Rules {
		for _, kw := range r.Keywords {
			if containsWord(text, kw) {
				return r.Label, true
			}
		}
	}
	return "", false
}

// containsWord reports whether the padded token string text contains kw as
// whole words, allowing a plural "s" or "es" on the last word.
func containsWord(text, kw string) bool {
	if kw == "" {
		return false
	}
	return strings.Contains(text, " "+kw+" ") ||
		strings.Contains(text, " "+kw+"s ") ||
		strings.Contains(text, " "+kw+"es ")
}

// tokenize lowercases s and joins its words with single spaces. A word is a
// run of letters, digits and apostrophes.
func tokenize(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	return strings.Join(words, " ")
}

// rule is shorthand for table declarations.
func rule(priority int, label string, keywords ...string) Rule {
	return Rule{Priority: priority, Keywords: keywords, Label: label}
}
