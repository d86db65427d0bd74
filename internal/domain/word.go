package domain

// WordEntry is one vocabulary item. Identity is Word within a WordType.
type WordEntry struct {
	Word    string
	Reading string
	English string
	Type    WordType
}

// Gloss returns the first clause of the English translation.
func (w WordEntry) Gloss() string {
	return FirstGloss(w.English)
}

// ObjectWord is a word paired with an action word, with the pairing strength.
type ObjectWord struct {
	Word    string
	Reading string
	English string
	Score   int
}

// Score bounds for a collocation; 3 is the strongest pairing.
const (
	MinCollocationScore = 1
	MaxCollocationScore = 3
)

// CollocationPair is a directed relation "ActionWord is natural with ObjectWord".
type CollocationPair struct {
	ActionWord string
	ObjectWord string
	Score      int
}
