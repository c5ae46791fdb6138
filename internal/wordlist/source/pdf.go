package source

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/aruytehno/english-trainer/internal/domain"
)

// Layout selects how the ledongthuc extractor turns positioned text runs
// into lines.
type Layout string

const (
	// LayoutRows joins every run on a baseline into one line.
	LayoutRows Layout = "rows"
	// LayoutColumns splits a baseline at wide horizontal gaps and emits
	// each column top to bottom, left to right. Oxford lists are printed in
	// three or four columns per page.
	LayoutColumns Layout = "columns"
)

// glyphWidth approximates one character's advance in points. The library
// reports a run's start X but not its width.
const glyphWidth = 5.0

// LedongthucExtractor decodes PDFs with github.com/ledongthuc/pdf.
type LedongthucExtractor struct {
	layout Layout
	// columnGap is the horizontal gap, in glyph widths, that starts a new cell.
	columnGap float64
}

// NewLedongthucExtractor creates an extractor with the given layout.
// An empty layout selects LayoutColumns.
func NewLedongthucExtractor(layout Layout) *LedongthucExtractor {
	if layout == "" {
		layout = LayoutColumns
	}
	return &LedongthucExtractor{layout: layout, columnGap: 3}
}

// ExtractPages opens path and returns the text of each non-empty page.
func (e *LedongthucExtractor) ExtractPages(ctx context.Context, path string) ([]Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	if total == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNoPages)
	}
	pages := make([]Page, 0, total)

	// Pages are 1-indexed in ledongthuc/pdf.
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages = append(pages, e.extractPage(r, i))
	}

	return pages, nil
}

func (e *LedongthucExtractor) extractPage(r *pdf.Reader, num int) (page Page) {
	page.Number = num
	defer func() {
		// The decoder panics on some malformed content streams.
		if rec := recover(); rec != nil {
			page = Page{Number: num, Err: fmt.Errorf("page %d: decode panic: %v", num, rec)}
		}
	}()

	p := r.Page(num)
	if p.V.IsNull() {
		return page
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		page.Err = fmt.Errorf("page %d: %w", num, err)
		return page
	}

	page.Text = e.layoutText(rows)
	return page
}

// cell is a run of text that belongs to one column on one baseline.
type cell struct {
	x, y float64
	text string
}

func (e *LedongthucExtractor) layoutText(rows pdf.Rows) string {
	var cells []cell
	for _, row := range rows {
		cells = append(cells, e.splitRow(row)...)
	}

	if e.layout == LayoutColumns {
		cells = orderByColumn(cells)
	}

	lines := make([]string, 0, len(cells))
	for _, c := range cells {
		if t := strings.TrimSpace(c.text); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n")
}

// splitRow joins the runs of one baseline. In column layout a gap wider
// than columnGap glyphs starts a new cell.
func (e *LedongthucExtractor) splitRow(row *pdf.Row) []cell {
	var (
		out     []cell
		cur     *cell
		lastEnd float64
	)
	for _, t := range row.Content {
		if t.S == "" {
			continue
		}
		gap := t.X - lastEnd
		newCell := cur == nil || (e.layout == LayoutColumns && gap > e.columnGap*glyphWidth)
		if newCell {
			out = append(out, cell{x: t.X, y: float64(row.Position)})
			cur = &out[len(out)-1]
		} else if gap > glyphWidth/2 && !strings.HasSuffix(cur.text, " ") && !strings.HasPrefix(t.S, " ") {
			cur.text += " "
		}
		cur.text += t.S
		lastEnd = t.X + float64(utf8.RuneCountInString(t.S))*glyphWidth
	}
	return out
}

// orderByColumn groups cells whose left edges align and returns them
// column by column, each column top to bottom. Cells above the top of every
// multi-cell column (page titles, running heads) come first, so a centred
// title never lands between two columns.
func orderByColumn(cells []cell) []cell {
	const tolerance = 4 * glyphWidth

	type column struct {
		x     float64
		cells []cell
	}
	var cols []*column
	for _, c := range cells {
		var target *column
		for _, col := range cols {
			if math.Abs(col.x-c.x) <= tolerance {
				target = col
				break
			}
		}
		if target == nil {
			target = &column{x: c.x}
			cols = append(cols, target)
		}
		target.cells = append(target.cells, c)
	}

	// PDF y grows upwards: larger y is higher on the page.
	bodyTop := math.Inf(-1)
	for _, col := range cols {
		if len(col.cells) < 2 {
			continue
		}
		for _, c := range col.cells {
			bodyTop = math.Max(bodyTop, c.y)
		}
	}

	var header []cell
	if !math.IsInf(bodyTop, -1) {
		for _, col := range cols {
			kept := col.cells[:0]
			for _, c := range col.cells {
				if c.y > bodyTop {
					header = append(header, c)
				} else {
					kept = append(kept, c)
				}
			}
			col.cells = kept
		}
	}
	slices.SortStableFunc(header, func(a, b cell) int {
		if c := cmp.Compare(b.y, a.y); c != 0 {
			return c
		}
		return cmp.Compare(a.x, b.x)
	})

	slices.SortStableFunc(cols, func(a, b *column) int { return cmp.Compare(a.x, b.x) })

	out := make([]cell, 0, len(cells))
	out = append(out, header...)
	for _, col := range cols {
		slices.SortStableFunc(col.cells, func(a, b cell) int { return cmp.Compare(b.y, a.y) })
		out = append(out, col.cells...)
	}
	return out
}
