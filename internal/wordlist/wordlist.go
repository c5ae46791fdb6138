// Package wordlist turns raw word observations into the final ordered,
// deduplicated and numbered list of entries.
package wordlist

import (
	"cmp"
	"slices"

	"github.com/aruytehno/english-trainer/internal/domain"
)

// Deduplicate collapses observations to one entry per word, keeping the
// easiest level seen. Ties keep the first occurrence. The returned order is
// first-seen order; callers sort afterwards.
func Deduplicate(obs []domain.Observation) []domain.WordEntry {
	index := make(map[string]int, len(obs))
	entries := make([]domain.WordEntry, 0, len(obs))

	for _, o := range obs {
		if i, seen := index[o.Word]; seen {
			if o.Level.Easier(entries[i].Level) {
				entries[i].Level = o.Level
			}
			continue
		}
		index[o.Word] = len(entries)
		entries = append(entries, domain.WordEntry{En: o.Word, Level: o.Level})
	}

	return entries
}

// Sort orders entries by (level rank, word) in place.
func Sort(entries []domain.WordEntry) {
	slices.SortStableFunc(entries, func(a, b domain.WordEntry) int {
		if c := cmp.Compare(a.Level.Rank(), b.Level.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.En, b.En)
	})
}

// Renumber assigns dense 1-based ids in slice order.
func Renumber(entries []domain.WordEntry) {
	for i := range entries {
		entries[i].ID = i + 1
	}
}

// Build runs dedupe, sort and renumber over observations.
func Build(obs []domain.Observation) []domain.WordEntry {
	entries := Deduplicate(obs)
	Sort(entries)
	Renumber(entries)
	return entries
}

// LevelStats is the per-level breakdown of a finished list.
type LevelStats struct {
	Level   domain.Level
	Count   int
	Samples []string
}

// Summarize counts entries per level in rank order and keeps up to
// sampleSize words of each. Levels with no entries are omitted.
func Summarize(entries []domain.WordEntry, sampleSize int) []LevelStats {
	byLevel := make(map[domain.Level]*LevelStats)
	for _, e := range entries {
		s, ok := byLevel[e.Level]
		if !ok {
			s = &LevelStats{Level: e.Level}
			byLevel[e.Level] = s
		}
		s.Count++
		if len(s.Samples) < sampleSize {
			s.Samples = append(s.Samples, e.En)
		}
	}

	out := make([]LevelStats, 0, len(byLevel))
	for _, l := range domain.AllLevels() {
		if s, ok := byLevel[l]; ok {
			out = append(out, *s)
		}
	}
	return out
}
