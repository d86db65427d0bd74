package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("word", "required")

	if got := err.Error(); got != "validation: word: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "word", Message: "required"},
		{Field: "type", Message: "unknown word type"},
	})

	if got := err.Error(); got != "validation: 2 errors (first: word: required)" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestValidationError_OrNil(t *testing.T) {
	t.Parallel()

	var verr ValidationError
	if verr.OrNil() != nil {
		t.Fatal("empty ValidationError must collapse to nil")
	}

	verr.Add("hints", "empty")
	if err := verr.OrNil(); err == nil || !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
