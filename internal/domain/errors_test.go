package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingInputError(t *testing.T) {
	t.Parallel()

	err := NewMissingInputError("Oxford-3000-Key-Words.pdf")

	if got := err.Error(); got != "input file not found: Oxford-3000-Key-Words.pdf" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Fatal("errors.Is(err, ErrMissingInput) = false")
	}

	wrapped := fmt.Errorf("preflight: %w", err)
	var target *MissingInputError
	if !errors.As(wrapped, &target) || target.Path != "Oxford-3000-Key-Words.pdf" {
		t.Fatalf("errors.As lost the path: %+v", target)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrMissingInput, ErrInvalidLevel, ErrNoPages}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
