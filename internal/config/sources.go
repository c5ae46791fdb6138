package config

import (
	"fmt"
	"path/filepath"

	"github.com/aruytehno/english-trainer/internal/domain"
)

// Oxford5000Banner is the page title of the Oxford 5000 list. It closes a
// B2/C1 section until the next level label.
const Oxford5000Banner = "The Oxford 5000™ by CEFR level"

// DefaultSources returns the built-in source set for mode, with paths
// relative to the input directory.
func DefaultSources(mode string) []domain.Source {
	switch mode {
	case ModeText:
		return []domain.Source{
			textExport("A1 (3000).txt", domain.LevelA1),
			textExport("A2 (3000).txt", domain.LevelA2),
			textExport("B1 (3000).txt", domain.LevelB1),
			textExport("B2 (3000).txt", domain.LevelB2),
			textExport("B2 (5000).txt", domain.LevelB2),
			textExport("C1 (5000).txt", domain.LevelC1),
		}
	default:
		return []domain.Source{
			{
				Path:   "Oxford-3000-Key-Words.pdf",
				Kind:   domain.SourceKindPDF,
				Levels: []domain.Level{domain.LevelA1, domain.LevelA2, domain.LevelB1, domain.LevelB2},
			},
			{
				Path:       "Oxford-5000-Key-Words.pdf",
				Kind:       domain.SourceKindPDF,
				Levels:     []domain.Level{domain.LevelB2, domain.LevelC1},
				SectionEnd: Oxford5000Banner,
			},
		}
	}
}

func textExport(name string, level domain.Level) domain.Source {
	return domain.Source{
		Path:   name,
		Kind:   domain.SourceKindText,
		Level:  level,
		Levels: []domain.Level{level},
	}
}

// ResolveSources returns the configured sources, or the defaults for the
// configured mode, with relative paths joined to InputDir.
func (c *Config) ResolveSources() ([]domain.Source, error) {
	var sources []domain.Source
	if len(c.Sources) == 0 {
		sources = DefaultSources(c.Mode)
	} else {
		sources = make([]domain.Source, 0, len(c.Sources))
		for i, sc := range c.Sources {
			src, err := sc.toDomain()
			if err != nil {
				return nil, fmt.Errorf("sources[%d]: %w", i, err)
			}
			sources = append(sources, src)
		}
	}

	for i := range sources {
		if !filepath.IsAbs(sources[i].Path) {
			sources[i].Path = filepath.Join(c.InputDir, sources[i].Path)
		}
	}
	return sources, nil
}

func (sc SourceConfig) toDomain() (domain.Source, error) {
	if sc.Path == "" {
		return domain.Source{}, fmt.Errorf("path is required")
	}

	kind := domain.SourceKind(sc.Kind)
	if sc.Kind == "" {
		kind = kindFromExt(sc.Path)
	}
	if !kind.IsValid() {
		return domain.Source{}, fmt.Errorf("kind %q must be %q or %q", sc.Kind, domain.SourceKindText, domain.SourceKindPDF)
	}

	src := domain.Source{Path: sc.Path, Kind: kind, SectionEnd: sc.SectionEnd}

	if sc.Level != "" {
		l, err := domain.ParseLevel(sc.Level)
		if err != nil {
			return domain.Source{}, fmt.Errorf("level: %w", err)
		}
		src.Level = l
	}

	for _, raw := range sc.Levels {
		l, err := domain.ParseLevel(raw)
		if err != nil {
			return domain.Source{}, fmt.Errorf("levels: %w", err)
		}
		src.Levels = append(src.Levels, l)
	}
	// A fixed-level export only acts on its own label unless told otherwise.
	if src.Level != "" && len(src.Levels) == 0 {
		src.Levels = []domain.Level{src.Level}
	}

	return src, nil
}

func kindFromExt(path string) domain.SourceKind {
	if filepath.Ext(path) == ".pdf" {
		return domain.SourceKindPDF
	}
	return domain.SourceKindText
}
