package collocate

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/nihongo-hints/internal/dataset"
	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

type mapReader map[string]string

func (m mapReader) Reading(word string) string { return m[word] }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadFixtures(t *testing.T) ([]domain.WordEntry, *PairingTable) {
	t.Helper()
	vocab, err := dataset.LoadVocabulary(filepath.Join("testdata", "vocabulary.json"))
	require.NoError(t, err)
	table, err := LoadPairings(filepath.Join("testdata", "pairings.yaml"))
	require.NoError(t, err)
	return vocab, table
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	vocab, table := loadFixtures(t)
	g := NewGenerator(mapReader{"水": "みず", "高い": "たかい"}, discardLogger())
	g.now = func() time.Time { return time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC) }

	set, res := g.Generate(vocab, table)

	assert.Equal(t, []string{"飲む", "高い"}, set.ActionWords())
	assert.Equal(t, "2025-11-10", set.GeneratedAt)
	assert.Equal(t, SetVersion, set.Version)

	nomu := set.Words["飲む"]
	require.Len(t, nomu.Nouns(), 2, "薬 is not a noun in the vocabulary")
	assert.Equal(t, domain.ObjectWord{Word: "水", Reading: "みず", English: "water", Score: 3}, nomu.Nouns()[0])
	assert.Equal(t, "お茶", nomu.Nouns()[1].Word)

	takai := set.Words["高い"]
	assert.Equal(t, domain.WordTypeAdjective, takai.Type)
	assert.Equal(t, "たかい", takai.Reading)

	assert.NotContains(t, set.Words, "書く", "actions without nouns are dropped")

	assert.Equal(t, Result{
		ActionWords:    2,
		Pairs:          3,
		SkippedActions: 1, // 泳ぐ
		SkippedObjects: 2, // 宇宙船, 薬
		ReadingsFilled: 2,
	}, res)

	require.NoError(t, set.Validate())
}

func TestGenerate_NilReaderKeepsEmptyReadings(t *testing.T) {
	t.Parallel()

	vocab, table := loadFixtures(t)
	set, res := NewGenerator(nil, discardLogger()).Generate(vocab, table)

	assert.Empty(t, set.Words["飲む"].Nouns()[0].Reading)
	assert.Zero(t, res.ReadingsFilled)
}

func TestGenerate_SavedSetLoadsBack(t *testing.T) {
	t.Parallel()

	vocab, table := loadFixtures(t)
	set, _ := NewGenerator(nil, discardLogger()).Generate(vocab, table)

	path := filepath.Join(t.TempDir(), "collocations.json")
	require.NoError(t, dataset.SaveCollocations(path, set))

	loaded, err := dataset.LoadCollocations(path)
	require.NoError(t, err)
	assert.Equal(t, set.Pairs(), loaded.Pairs())
}

func TestParsePairings_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown section", "verbs_nouns:\n  飲む: []\n"},
		{"score out of range", "verb_noun:\n  飲む:\n    - noun: 水\n      score: 5\n"},
		{"duplicate noun", "verb_noun:\n  飲む:\n    - {noun: 水, score: 3}\n    - {noun: 水, score: 2}\n"},
		{"missing noun", "adjective_noun:\n  高い:\n    - score: 2\n"},
		{"not yaml", "verb_noun: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePairings([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParsePairings_Empty(t *testing.T) {
	t.Parallel()

	table, err := ParsePairings(nil)
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestParsePairings_NormalizesWords(t *testing.T) {
	t.Parallel()

	table, err := ParsePairings([]byte("verb_noun:\n  \" 撮る \":\n    - {noun: ｶﾒﾗ, score: 2}\n"))
	require.NoError(t, err)
	require.Contains(t, table.VerbNoun, "撮る")
	assert.Equal(t, "カメラ", table.VerbNoun["撮る"][0].Noun)
}
