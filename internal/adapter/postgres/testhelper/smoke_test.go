package testhelper

import (
	"context"
	"testing"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	action := UniqueWord("飲む")
	rec := SeedHint(t, pool, domain.HintDirectionForward, action, "水", "to drink water")

	var hint string
	err := pool.QueryRow(
		context.Background(),
		`SELECT hint FROM collocation_hints WHERE direction = $1 AND action_word = $2 AND object_word = $3`,
		string(rec.Direction), rec.ActionWord, rec.ObjectWord,
	).Scan(&hint)
	if err != nil {
		t.Fatalf("expected hint in DB, got error: %v", err)
	}

	if hint != rec.Hint {
		t.Fatalf("expected hint %q, got %q", rec.Hint, hint)
	}
}
