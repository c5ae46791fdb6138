package extract

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aruytehno/english-trainer/internal/domain"
	"github.com/aruytehno/english-trainer/internal/wordlist"
)

// ReportOptions controls the size of the summary printed after a run.
type ReportOptions struct {
	// SampleSize is the number of example words shown per level.
	SampleSize int
	// PreviewSize is the number of leading entries listed.
	PreviewSize int
}

// WriteReport prints per-level counts, the total, sample words per level
// and the first entries of the list.
func WriteReport(w io.Writer, entries []domain.WordEntry, opts ReportOptions) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("-", 30)
	levels := wordlist.Summarize(entries, opts.SampleSize)

	fmt.Fprintln(bw, "Words per level:")
	fmt.Fprintln(bw, rule)
	for _, ls := range levels {
		fmt.Fprintf(bw, "  %s: %4d\n", ls.Level, ls.Count)
	}
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "  Total: %4d\n", len(entries))

	if opts.SampleSize > 0 && len(levels) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Samples:")
		for _, ls := range levels {
			fmt.Fprintf(bw, "  %s: %s\n", ls.Level, strings.Join(ls.Samples, ", "))
		}
	}

	if n := min(opts.PreviewSize, len(entries)); n > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "First %d entries:\n", n)
		fmt.Fprintln(bw, strings.Repeat("-", 40))
		for _, e := range entries[:n] {
			fmt.Fprintf(bw, "%4d. %-20s [%s]\n", e.ID, e.En, e.Level)
		}
	}

	return bw.Flush()
}
