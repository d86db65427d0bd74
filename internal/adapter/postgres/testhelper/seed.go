package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

// UniqueWord returns a word that no other test uses, so tests sharing the
// container never collide on the primary key.
func UniqueWord(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedHint inserts one hint row and returns it as stored.
func SeedHint(t *testing.T, pool *pgxpool.Pool, dir domain.HintDirection, action, object, hint string) domain.HintRecord {
	t.Helper()

	rec := domain.HintRecord{
		Direction:  dir,
		ActionWord: action,
		ObjectWord: object,
		Hint:       hint,
		Source:     "seed",
		UpdatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collocation_hints (direction, action_word, object_word, hint, source, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		string(rec.Direction), rec.ActionWord, rec.ObjectWord, rec.Hint, rec.Source, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHint insert: %v", err)
	}
	return rec
}
