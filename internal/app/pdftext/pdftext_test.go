package pdftext

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruytehno/english-trainer/internal/domain"
	"github.com/aruytehno/english-trainer/internal/wordlist/source"
)

type fakePDF struct {
	pages map[string][]source.Page
}

func (f *fakePDF) ExtractPages(_ context.Context, path string) ([]source.Page, error) {
	pages, ok := f.pages[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return pages, nil
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Oxford-3000-Key-Words.pdf", "Oxford-3000-Key-Words.txt"},
		{"/data/list.PDF", "/data/list.txt"},
		{"noext", "noext.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputPath(tt.in), tt.in)
	}
}

func TestDump_JoinsPagesAndWarnsOnEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Oxford-5000-Key-Words.pdf")
	fake := &fakePDF{pages: map[string][]source.Page{path: {
		{Number: 1, Text: "B2\nabandon v.\n"},
		{Number: 2, Text: "  \n"},
		{Number: 3, Err: errors.New("bad stream")},
		{Number: 4, Text: "C1\nabolish v."},
	}}}

	var logs bytes.Buffer
	res, err := New(slog.New(slog.NewTextHandler(&logs, nil)), fake).Dump(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Pages)
	assert.Equal(t, 2, res.EmptyPages)

	data, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Equal(t, "B2\nabandon v.\n\nC1\nabolish v.", string(data))

	assert.Contains(t, logs.String(), "page=2")
	assert.Contains(t, logs.String(), "page=3")
	assert.Contains(t, logs.String(), "bad stream")
}

func TestDump_MissingFile(t *testing.T) {
	t.Parallel()

	d := New(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakePDF{})
	_, err := d.Dump(context.Background(), "missing.pdf")
	require.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestDumpAll_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf"), filepath.Join(dir, "c.pdf")}
	fake := &fakePDF{pages: map[string][]source.Page{
		paths[0]: {{Number: 1, Text: "A1\ncat"}},
		paths[1]: {{Number: 1, Text: "A2\nbird"}, {Number: 2, Text: "B1\nfish"}},
		paths[2]: {{Number: 1, Text: ""}},
	}}
	d := New(slog.New(slog.NewTextHandler(io.Discard, nil)), fake)

	results, err := d.DumpAll(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, p := range paths {
		assert.Equal(t, p, results[i].Input)
		assert.FileExists(t, OutputPath(p))
	}
	assert.Equal(t, 2, results[1].Pages)
	assert.Equal(t, 1, results[2].EmptyPages)
}

func TestDumpAll_Failure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.pdf")
	fake := &fakePDF{pages: map[string][]source.Page{first: {{Number: 1, Text: "A1\ncat"}}}}
	d := New(slog.New(slog.NewTextHandler(io.Discard, nil)), fake)

	results, err := d.DumpAll(context.Background(), []string{first, filepath.Join(dir, "b.pdf")})
	require.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Nil(t, results)
	assert.NoFileExists(t, filepath.Join(dir, "b.txt"))
}

func TestDumpAll_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakePDF{})
	_, err := d.DumpAll(ctx, []string{"a.pdf"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDump_GeneratedPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Oxford-3000-Key-Words.pdf")
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetCompression(false)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	for _, l := range []string{"A1", "cat n."} {
		doc.CellFormat(300, 18, l, "", 1, "L", false, 0, "")
	}
	require.NoError(t, doc.OutputFileAndClose(path))

	d := New(slog.New(slog.NewTextHandler(io.Discard, nil)), source.NewLedongthucExtractor(source.LayoutRows))
	res, err := d.Dump(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, res.EmptyPages)

	data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "Oxford-3000-Key-Words.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "cat")
}
