package collocate

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// SetVersion is written into generated collocation sets.
const SetVersion = "1.0.0"

// Result summarizes a generation run.
type Result struct {
	ActionWords    int
	Pairs          int
	SkippedActions int
	SkippedObjects int
	ReadingsFilled int
}

// Generator builds collocation sets from a vocabulary and a pairing table.
type Generator struct {
	reader ReadingFinder
	log    *slog.Logger
	now    func() time.Time
}

// NewGenerator creates a generator. reader may be nil, in which case missing
// readings stay empty.
func NewGenerator(reader ReadingFinder, log *slog.Logger) *Generator {
	return &Generator{reader: reader, log: log, now: time.Now}
}

// Generate keeps only pairings whose action word and noun both exist in vocab
// with the expected type. Actions left without any noun are dropped.
func (g *Generator) Generate(vocab []domain.WordEntry, table *PairingTable) (*domain.CollocationSet, Result) {
	lookup := indexVocabulary(vocab)
	set := domain.NewCollocationSet(SetVersion, g.now().UTC().Format("2006-01-02"))
	var res Result

	sections := []struct {
		typ      domain.WordType
		pairings map[string][]Pairing
	}{
		{domain.WordTypeVerb, table.VerbNoun},
		{domain.WordTypeAdjective, table.AdjectiveNoun},
	}

	for _, sec := range sections {
		for _, action := range slices.Sorted(maps.Keys(sec.pairings)) {
			entry, ok := lookup[sec.typ][action]
			if !ok {
				res.SkippedActions++
				g.log.Debug("action word not in vocabulary",
					slog.String("word", action),
					slog.String("type", string(sec.typ)),
				)
				continue
			}
			if _, dup := set.Words[action]; dup {
				res.SkippedActions++
				g.log.Warn("action word listed in more than one section", slog.String("word", action))
				continue
			}

			var nouns []domain.ObjectWord
			for _, p := range sec.pairings[action] {
				noun, ok := lookup[domain.WordTypeNoun][p.Noun]
				if !ok {
					res.SkippedObjects++
					continue
				}
				nouns = append(nouns, domain.ObjectWord{
					Word:    noun.Word,
					Reading: g.fillReading(noun.Word, noun.Reading, &res),
					English: noun.English,
					Score:   p.Score,
				})
			}
			if len(nouns) == 0 {
				continue
			}

			entry.Reading = g.fillReading(entry.Word, entry.Reading, &res)
			set.Words[action] = domain.ActionEntry{
				WordEntry: entry,
				Matches:   map[domain.WordType][]domain.ObjectWord{domain.WordTypeNoun: nouns},
			}
			res.ActionWords++
			res.Pairs += len(nouns)
		}
	}

	return set, res
}

func (g *Generator) fillReading(word, reading string, res *Result) string {
	if reading != "" || g.reader == nil {
		return reading
	}
	r := g.reader.Reading(word)
	if r != "" {
		res.ReadingsFilled++
	}
	return r
}

// indexVocabulary groups entries by type; the first entry for a word wins.
func indexVocabulary(vocab []domain.WordEntry) map[domain.WordType]map[string]domain.WordEntry {
	idx := map[domain.WordType]map[string]domain.WordEntry{
		domain.WordTypeVerb:      {},
		domain.WordTypeNoun:      {},
		domain.WordTypeAdjective: {},
	}
	for _, e := range vocab {
		byWord, ok := idx[e.Type]
		if !ok {
			continue
		}
		if _, seen := byWord[e.Word]; !seen {
			byWord[e.Word] = e
		}
	}
	return idx
}
