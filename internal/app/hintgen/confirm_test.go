package hintgen

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestStdinConfirmer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewStdinConfirmer(strings.NewReader("\n  \nQ\n"), &out)
	p := Progress{Processed: 10, Total: 30, Hints: 120}

	for i, want := range []bool{true, true, false, false} {
		got, err := c.Continue(context.Background(), p)
		if err != nil {
			t.Fatalf("answer %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("answer %d: got %v, want %v", i, got, want)
		}
	}

	if !strings.Contains(out.String(), "Processed 10/30 words (120 hints)") {
		t.Errorf("prompt not written, got %q", out.String())
	}
}

func TestStdinConfirmer_QuitWord(t *testing.T) {
	t.Parallel()

	c := NewStdinConfirmer(strings.NewReader("quit"), &bytes.Buffer{})
	got, err := c.Continue(context.Background(), Progress{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("quit without newline should stop the run")
	}
}

func TestStdinConfirmer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := NewStdinConfirmer(strings.NewReader("\n"), &out)
	got, err := c.Continue(ctx, Progress{})
	if err != nil || got {
		t.Errorf("Continue = %v, %v; want false, nil", got, err)
	}
	if out.Len() != 0 {
		t.Error("no prompt expected after cancellation")
	}
}

func TestAutoConfirmer(t *testing.T) {
	t.Parallel()

	ok, err := AutoConfirmer{}.Continue(context.Background(), Progress{})
	if err != nil || !ok {
		t.Errorf("Continue = %v, %v; want true, nil", ok, err)
	}
}
