// Package pdftext dumps the text layer of PDF word lists to plain-text
// files, for inspection and for the text input mode.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aruytehno/english-trainer/internal/domain"
	"github.com/aruytehno/english-trainer/internal/wordlist/export"
	"github.com/aruytehno/english-trainer/internal/wordlist/source"
)

// DefaultFiles are dumped when no paths are given.
var DefaultFiles = []string{"Oxford-3000-Key-Words.pdf", "Oxford-5000-Key-Words.pdf"}

// Result describes one dumped document.
type Result struct {
	Input      string
	Output     string
	Pages      int
	EmptyPages int
}

// Dumper writes <name>.txt next to each PDF it is given.
type Dumper struct {
	log *slog.Logger
	pdf source.PDFExtractor
}

// New creates a Dumper.
func New(log *slog.Logger, pdf source.PDFExtractor) *Dumper {
	return &Dumper{log: log, pdf: pdf}
}

// OutputPath returns path with its extension replaced by .txt.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
}

// Dump extracts path and writes its non-empty pages separated by a blank
// line. Pages without text are reported and left out.
func (d *Dumper) Dump(ctx context.Context, path string) (Result, error) {
	pages, err := d.pdf.ExtractPages(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{}, domain.NewMissingInputError(path)
	}
	if err != nil {
		return Result{}, fmt.Errorf("extract %s: %w", path, err)
	}

	res := Result{Input: path, Output: OutputPath(path), Pages: len(pages)}
	texts := make([]string, 0, len(pages))
	for _, pg := range pages {
		text := strings.TrimRight(pg.Text, "\n")
		if pg.Err != nil || strings.TrimSpace(text) == "" {
			res.EmptyPages++
			attrs := []any{slog.String("file", filepath.Base(path)), slog.Int("page", pg.Number)}
			if pg.Err != nil {
				attrs = append(attrs, slog.String("error", pg.Err.Error()))
			}
			d.log.Warn("no text on page", attrs...)
			continue
		}
		texts = append(texts, text)
	}

	if err := export.WriteAtomic(res.Output, []byte(strings.Join(texts, "\n\n"))); err != nil {
		return Result{}, err
	}
	d.log.Info("text saved", slog.String("output", res.Output), slog.Int("pages", res.Pages))
	return res, nil
}

// DumpAll dumps every path, at most two at a time. Results keep the
// order of paths. The first failure cancels the remaining dumps.
func (d *Dumper) DumpAll(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		paths = DefaultFiles
	}

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(2)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := d.Dump(gctx, p)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
