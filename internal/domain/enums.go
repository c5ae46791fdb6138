package domain

import (
	"fmt"
	"strings"
)

// Level is a CEFR proficiency tier.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
)

// levelOrder is the canonical ordering, easiest first. Rank is the index.
var levelOrder = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1}

// AllLevels returns the levels in rank order (A1 first).
func AllLevels() []Level {
	out := make([]Level, len(levelOrder))
	copy(out, levelOrder)
	return out
}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	return l.Rank() >= 0
}

// Rank returns the position of l in the A1<A2<B1<B2<C1 ordering,
// or -1 for an unknown level.
func (l Level) Rank() int {
	for i, known := range levelOrder {
		if l == known {
			return i
		}
	}
	return -1
}

// Easier reports whether l ranks strictly below other.
func (l Level) Easier(other Level) bool {
	return l.Rank() < other.Rank()
}

// ParseLevel accepts a level label in any case with surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// SourceKind is the on-disk format of a word-list source.
type SourceKind string

const (
	SourceKindText SourceKind = "text"
	SourceKindPDF  SourceKind = "pdf"
)

func (k SourceKind) String() string { return string(k) }

func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindText, SourceKindPDF:
		return true
	}
	return false
}
