package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
)

// NewsCollector streams the rows of one aggregation run. Every failed source
// is emitted as an error result after the rows.
type NewsCollector struct {
	aggregator *aggregator.Aggregator

	mu     sync.Mutex
	report aggregator.Report
}

func NewNewsCollector(agg *aggregator.Aggregator) *NewsCollector {
	return &NewsCollector{
		aggregator: agg,
	}
}

func (c *NewsCollector) Collect(ctx context.Context) (<-chan Result[domain.News], error) {
	out := make(chan Result[domain.News])

	go func() {
		defer close(out)

		table, report := c.aggregator.Collect(ctx)
		c.mu.Lock()
		c.report = report
		c.mu.Unlock()

		for _, row := range table.Rows() {
			select {
			case <-ctx.Done():
				return
			case out <- Result[domain.News]{Result: row}:
			}
		}

		for _, failed := range report.Failed() {
			select {
			case <-ctx.Done():
				return
			case out <- Result[domain.News]{Err: fmt.Errorf("source %s: %w", failed.Source, failed.Err)}:
			}
		}
		slog.Debug("News collector drained", "rows", table.Len())
	}()

	return out, nil
}

// Report returns the outcome of the last completed run.
func (c *NewsCollector) Report() aggregator.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report
}
