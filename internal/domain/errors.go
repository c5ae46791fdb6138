package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrMissingInput = errors.New("input file not found")
	ErrInvalidLevel = errors.New("invalid CEFR level")
	ErrNoPages      = errors.New("document has no pages")
)

// MissingInputError names the source file that could not be found.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingInput, e.Path)
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// NewMissingInputError creates a MissingInputError for path.
func NewMissingInputError(path string) *MissingInputError {
	return &MissingInputError{Path: path}
}
