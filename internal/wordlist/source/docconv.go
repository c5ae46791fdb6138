package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"code.sajari.com/docconv"
)

// DocconvExtractor decodes PDFs through docconv, which shells out to
// poppler's pdftotext. Form feeds in the output separate pages.
type DocconvExtractor struct{}

// NewDocconvExtractor creates a DocconvExtractor.
func NewDocconvExtractor() *DocconvExtractor {
	return &DocconvExtractor{}
}

// ExtractPages converts the whole document and splits it into pages.
func (e *DocconvExtractor) ExtractPages(ctx context.Context, path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF %s: %w", path, err)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, _, err := docconv.ConvertPDF(f)
	if err != nil {
		return nil, fmt.Errorf("docconv %s: %w", path, err)
	}

	return splitFormFeeds(body), nil
}

func splitFormFeeds(body string) []Page {
	parts := strings.Split(body, "\f")
	// pdftotext terminates the last page with a form feed too.
	if n := len(parts); n > 1 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}

	pages := make([]Page, 0, len(parts))
	for i, p := range parts {
		pages = append(pages, Page{Number: i + 1, Text: p})
	}
	return pages
}
