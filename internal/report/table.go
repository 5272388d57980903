// Package report renders a collected table for humans and machines.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/pkg/stringsutil"
)

// DefaultTextWidth caps the title and text columns in the text table.
const DefaultTextWidth = 60

// WriteTable prints rows in column order, one per line, followed by the
// per-source summary.
func WriteTable(w io.Writer, table *domain.Table, rep aggregator.Report, width int) error {
	if width <= 0 {
		width = DefaultTextWidth
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(domain.Columns, "\t"))
	writeSeparator(tw, len(domain.Columns))

	for i := 0; i < table.Len(); i++ {
		record := table.Record(i)
		record[0] = stringsutil.Truncate(stringsutil.SingleLine(record[0]), width)
		record[3] = stringsutil.Truncate(stringsutil.SingleLine(record[3]), width)
		fmt.Fprintln(tw, strings.Join(record, "\t"))
	}
	fmt.Fprintln(tw)

	writeSummary(tw, rep)
	return tw.Flush()
}

func writeSummary(tw *tabwriter.Writer, rep aggregator.Report) {
	if len(rep) == 0 {
		return
	}
	header := []string{"source", "rows", "duration", "error"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	writeSeparator(tw, len(header))

	for _, s := range rep {
		errText := "-"
		if s.Err != nil {
			errText = stringsutil.SingleLine(s.Err.Error())
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Source, s.Rows, fmtDuration(s.Duration), errText)
	}
}

func writeSeparator(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
