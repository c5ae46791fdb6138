// Package scan walks the lines of one document, tracks the current CEFR
// level, and emits a word observation for every line the cleaner accepts.
package scan

import (
	"strings"

	"github.com/aruytehno/english-trainer/internal/domain"
)

// Cleaner extracts a headword from a raw line.
type Cleaner interface {
	Clean(line string) (string, bool)
}

// Stats counts what happened to each line of a document.
type Stats struct {
	Lines        int
	Labels       int
	FrontMatter  int
	OutOfSection int
	Rejected     int
	Accepted     int
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Lines += other.Lines
	s.Labels += other.Labels
	s.FrontMatter += other.FrontMatter
	s.OutOfSection += other.OutOfSection
	s.Rejected += other.Rejected
	s.Accepted += other.Accepted
}

// Document scans the pages of src in order. The level cursor starts at
// src.Level (empty for labelled documents) and carries across pages.
func Document(src domain.Source, pages []string, cleaner Cleaner) ([]domain.Observation, Stats) {
	var (
		obs       []domain.Observation
		stats     Stats
		current   = src.Level
		gated     = src.SectionEnd != ""
		banner    = domain.FoldText(src.SectionEnd)
		inSection = src.Level != ""
	)

	for _, page := range pages {
		for _, raw := range strings.Split(page, "\n") {
			line := strings.TrimSpace(raw)
			stats.Lines++

			if l := domain.Level(line); l.IsValid() {
				// A label the source does not list never moves the cursor.
				if !src.Recognises(l) {
					stats.Rejected++
					continue
				}
				current = l
				inSection = true
				stats.Labels++
				continue
			}

			if gated && strings.Contains(domain.FoldText(line), banner) {
				inSection = false
				stats.OutOfSection++
				continue
			}

			if current == "" {
				stats.FrontMatter++
				continue
			}
			if gated && !inSection {
				stats.OutOfSection++
				continue
			}

			word, ok := cleaner.Clean(line)
			if !ok {
				stats.Rejected++
				continue
			}

			stats.Accepted++
			obs = append(obs, domain.Observation{Word: word, Level: current, Source: src.Path})
		}
	}

	return obs, stats
}
