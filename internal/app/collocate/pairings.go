package collocate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// Pairing is one curated object for an action word.
type Pairing struct {
	Noun  string `yaml:"noun"`
	Score int    `yaml:"score"`
}

// PairingTable holds the curated action→noun pairings, keyed by action word.
type PairingTable struct {
	VerbNoun      map[string][]Pairing `yaml:"verb_noun"`
	AdjectiveNoun map[string][]Pairing `yaml:"adjective_noun"`
}

// LoadPairings reads and validates a YAML pairing table. Unknown keys are
// rejected so typos in section names do not silently drop pairings.
func LoadPairings(path string) (*PairingTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load pairings: %w", err)
	}
	return ParsePairings(data)
}

// ParsePairings decodes a YAML pairing table.
func ParsePairings(data []byte) (*PairingTable, error) {
	var t PairingTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse pairings: %w", err)
	}
	t.normalize()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *PairingTable) normalize() {
	t.VerbNoun = normalizeSection(t.VerbNoun)
	t.AdjectiveNoun = normalizeSection(t.AdjectiveNoun)
}

func normalizeSection(section map[string][]Pairing) map[string][]Pairing {
	out := make(map[string][]Pairing, len(section))
	for action, ps := range section {
		action = domain.NormalizeWord(action)
		for _, p := range ps {
			p.Noun = domain.NormalizeWord(p.Noun)
			out[action] = append(out[action], p)
		}
	}
	return out
}

// Validate checks scores, empty words and duplicate nouns.
func (t *PairingTable) Validate() error {
	verr := &domain.ValidationError{}
	validateSection(verr, "verb_noun", t.VerbNoun)
	validateSection(verr, "adjective_noun", t.AdjectiveNoun)
	return verr.OrNil()
}

func validateSection(verr *domain.ValidationError, name string, section map[string][]Pairing) {
	for _, action := range slices.Sorted(maps.Keys(section)) {
		path := name + "." + action
		if action == "" {
			verr.Add(path, "empty action word")
			continue
		}
		seen := make(map[string]bool, len(section[action]))
		for i, p := range section[action] {
			ppath := fmt.Sprintf("%s[%d]", path, i)
			if p.Noun == "" {
				verr.Add(ppath+".noun", "required")
				continue
			}
			if seen[p.Noun] {
				verr.Add(ppath+".noun", fmt.Sprintf("duplicate noun %q", p.Noun))
			}
			seen[p.Noun] = true
			if p.Score < domain.MinCollocationScore || p.Score > domain.MaxCollocationScore {
				verr.Add(ppath+".score", fmt.Sprintf("must be in %d..%d (got %d)", domain.MinCollocationScore, domain.MaxCollocationScore, p.Score))
			}
		}
	}
}

// Len returns the number of pairings in both sections.
func (t *PairingTable) Len() int {
	n := 0
	for _, ps := range t.VerbNoun {
		n += len(ps)
	}
	for _, ps := range t.AdjectiveNoun {
		n += len(ps)
	}
	return n
}
