package extract

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruytehno/english-trainer/internal/domain"
	"github.com/aruytehno/english-trainer/internal/wordlist/source"
	"github.com/aruytehno/english-trainer/pkg/ctxutil"
)

// fakePDF returns canned pages for every path.
type fakePDF struct {
	pages []source.Page
}

func (f *fakePDF) ExtractPages(_ context.Context, _ string) ([]source.Page, error) {
	return f.pages, nil
}

// spyLoader counts Load calls on top of a real loader.
type spyLoader struct {
	*source.Loader
	loads int
}

func (s *spyLoader) Load(ctx context.Context, src domain.Source) ([]source.Page, error) {
	s.loads++
	return s.Loader.Load(ctx, src)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func textSource(path string, level domain.Level) domain.Source {
	return domain.Source{Path: path, Kind: domain.SourceKindText, Level: level, Levels: []domain.Level{level}}
}

// scenarioSources writes an A1 list (cat, dog) and a B1 list (dog, fish).
func scenarioSources(t *testing.T, dir string) []domain.Source {
	t.Helper()
	a1 := writeFile(t, dir, "A1 (3000).txt", "cat n.\ndog n.\n")
	b1 := writeFile(t, dir, "B1 (3000).txt", "dog v.\nfish n., v.\n")
	return []domain.Source{textSource(a1, domain.LevelA1), textSource(b1, domain.LevelB1)}
}

func TestPipeline_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "words.json")
	p := NewPipeline(discardLogger(), source.NewLoader(nil), Config{
		Sources:    scenarioSources(t, dir),
		OutputPath: out,
	})

	require.NoError(t, p.Run(context.Background()))

	want := []domain.WordEntry{
		{ID: 1, En: "cat", Level: domain.LevelA1},
		{ID: 2, En: "dog", Level: domain.LevelA1},
		{ID: 3, En: "fish", Level: domain.LevelB1},
	}
	assert.Equal(t, want, p.Entries())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"en": "fish"`)
	assert.Contains(t, string(data), `"level": "B1"`)

	results := p.Results()
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Words)
	assert.Equal(t, 1, results[0].Pages)
	assert.Equal(t, 2, results[1].Stats.Accepted)
}

func TestPipeline_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "words.json")
	cfg := Config{Sources: scenarioSources(t, dir), OutputPath: out}

	require.NoError(t, NewPipeline(discardLogger(), source.NewLoader(nil), cfg).Run(context.Background()))
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	require.NoError(t, NewPipeline(discardLogger(), source.NewLoader(nil), cfg).Run(context.Background()))
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPipeline_MissingInputAbortsBeforeParsing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "words.json")
	sources := append(scenarioSources(t, dir), textSource(filepath.Join(dir, "C1 (5000).txt"), domain.LevelC1))

	spy := &spyLoader{Loader: source.NewLoader(nil)}
	err := NewPipeline(discardLogger(), spy, Config{Sources: sources, OutputPath: out}).Run(context.Background())

	require.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Contains(t, err.Error(), "C1 (5000).txt")
	assert.Zero(t, spy.loads, "no source may be parsed after a failed preflight")
	assert.NoFileExists(t, out)
}

func TestPipeline_MissingInputKeepsPreviousOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := writeFile(t, dir, "words.json", "previous")

	err := NewPipeline(discardLogger(), source.NewLoader(nil), Config{
		Sources:    []domain.Source{textSource(filepath.Join(dir, "nope.txt"), domain.LevelA1)},
		OutputPath: out,
	}).Run(context.Background())
	require.ErrorIs(t, err, domain.ErrMissingInput)

	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(data))
}

func TestPipeline_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "words.json")
	p := NewPipeline(discardLogger(), source.NewLoader(nil), Config{
		Sources:    scenarioSources(t, dir),
		OutputPath: out,
		DryRun:     true,
	})

	require.NoError(t, p.Run(context.Background()))
	assert.Len(t, p.Entries(), 3)
	assert.NoFileExists(t, out)
}

func TestPipeline_PDFSourceSkipsBadPages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pdfPath := writeFile(t, dir, "Oxford-5000-Key-Words.pdf", "%PDF-1.4")
	fake := &fakePDF{pages: []source.Page{
		{Number: 1, Text: "The Oxford 5000™ by CEFR level\nB2\nabandon v.\n"},
		{Number: 2, Err: errors.New("garbled stream")},
		{Number: 3, Text: "C1\nabolish v.\nThe Oxford 5000™ by CEFR level\nOxford University Press\n"},
	}}

	var logs bytes.Buffer
	p := NewPipeline(slog.New(slog.NewTextHandler(&logs, nil)), source.NewLoader(fake), Config{
		Sources: []domain.Source{{
			Path:       pdfPath,
			Kind:       domain.SourceKindPDF,
			Levels:     []domain.Level{domain.LevelB2, domain.LevelC1},
			SectionEnd: "The Oxford 5000™ by CEFR level",
		}},
		DryRun: true,
	})

	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, []domain.WordEntry{
		{ID: 1, En: "abandon", Level: domain.LevelB2},
		{ID: 2, En: "abolish", Level: domain.LevelC1},
	}, p.Entries())

	results := p.Results()
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Pages)
	assert.Equal(t, 1, results[0].SkippedPages)

	assert.Contains(t, logs.String(), "page skipped")
	assert.Contains(t, logs.String(), "run_id="+p.RunID().String())
}

func TestPipeline_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPipeline(discardLogger(), source.NewLoader(nil), Config{
		Sources:    scenarioSources(t, dir),
		OutputPath: filepath.Join(dir, "words.json"),
	}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_NoSources(t *testing.T) {
	t.Parallel()

	err := NewPipeline(discardLogger(), source.NewLoader(nil), Config{}).Run(context.Background())
	require.Error(t, err)
}

func TestPipeline_RunIDFromContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	id := uuid.New()
	p := NewPipeline(discardLogger(), source.NewLoader(nil), Config{Sources: scenarioSources(t, dir), DryRun: true})

	require.NoError(t, p.Run(ctxutil.WithRunID(context.Background(), id)))
	assert.Equal(t, id, p.RunID())
}

func TestPipeline_GeneratesRunID(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{Sources: scenarioSources(t, dir), DryRun: true}
	a := NewPipeline(discardLogger(), source.NewLoader(nil), cfg)
	b := NewPipeline(discardLogger(), source.NewLoader(nil), cfg)

	require.NoError(t, a.Run(context.Background()))
	require.NoError(t, b.Run(context.Background()))
	assert.NotEqual(t, uuid.Nil, a.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}
