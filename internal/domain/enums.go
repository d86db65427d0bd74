package domain

// WordType is the lexical class of a vocabulary word.
type WordType string

const (
	WordTypeVerb      WordType = "verb"
	WordTypeNoun      WordType = "noun"
	WordTypeAdjective WordType = "adjective"
)

func (t WordType) String() string { return string(t) }

func (t WordType) IsValid() bool {
	switch t {
	case WordTypeVerb, WordTypeNoun, WordTypeAdjective:
		return true
	}
	return false
}

// IsAction reports whether words of this type can take object words.
func (t WordType) IsAction() bool {
	return t == WordTypeVerb || t == WordTypeAdjective
}

// HintDirection tells which side of a collocation the learner already knows.
type HintDirection string

const (
	// HintDirectionForward: action word known, object word to guess.
	HintDirectionForward HintDirection = "forward"
	// HintDirectionReverse: object word known, action word to guess.
	HintDirectionReverse HintDirection = "reverse"
)

func (d HintDirection) String() string { return string(d) }

func (d HintDirection) IsValid() bool {
	switch d {
	case HintDirectionForward, HintDirectionReverse:
		return true
	}
	return false
}
