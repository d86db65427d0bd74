package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithRunID(context.Background(), id)

	got, ok := RunIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
	if RunIDString(ctx) != id.String() {
		t.Fatalf("RunIDString = %q, want %q", RunIDString(ctx), id.String())
	}
}

func TestRunIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := RunIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
	if RunIDString(context.Background()) != "" {
		t.Fatal("expected empty string for empty context")
	}
}

func TestRunIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithRunID(context.Background(), uuid.Nil)

	if _, ok := RunIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for nil UUID")
	}
}

func TestRunIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), runIDKey, "not-a-uuid")

	if _, ok := RunIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}
