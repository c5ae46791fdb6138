// Package source reads word-list documents from disk and returns their
// text page by page. PDF decoding is delegated to a PDFExtractor.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aruytehno/english-trainer/internal/domain"
)

// Page is the visible text of one page. Err is set when the page could not
// be decoded; such pages carry no text and are skipped by callers.
type Page struct {
	Number int
	Text   string
	Err    error
}

// PDFExtractor returns the text of every page of a PDF document.
// A document that cannot be opened at all is reported as an error; per-page
// failures are reported through Page.Err.
type PDFExtractor interface {
	ExtractPages(ctx context.Context, path string) ([]Page, error)
}

// Loader reads configured sources.
type Loader struct {
	pdf PDFExtractor
}

// NewLoader creates a Loader that decodes PDFs with pdf.
func NewLoader(pdf PDFExtractor) *Loader {
	return &Loader{pdf: pdf}
}

// Check verifies that the source file exists and is a regular file.
func (l *Loader) Check(src domain.Source) error {
	info, err := os.Stat(src.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewMissingInputError(src.Path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", src.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src.Path)
	}
	return nil
}

// Load returns the pages of src.
func (l *Loader) Load(ctx context.Context, src domain.Source) ([]Page, error) {
	switch src.Kind {
	case domain.SourceKindText:
		return readText(src.Path)
	case domain.SourceKindPDF:
		if l.pdf == nil {
			return nil, fmt.Errorf("no PDF extractor configured for %s", src.Path)
		}
		pages, err := l.pdf.ExtractPages(ctx, src.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewMissingInputError(src.Path)
		}
		return pages, err
	default:
		return nil, fmt.Errorf("unsupported source kind %q for %s", src.Kind, src.Path)
	}
}

// readText returns a plain-text export as a single page.
func readText(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewMissingInputError(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return []Page{{Number: 1, Text: text}}, nil
}

// Texts returns the text of every page that decoded successfully.
func Texts(pages []Page) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		if p.Err == nil {
			out = append(out, p.Text)
		}
	}
	return out
}
