// Package aggregator merges the output of every configured source into one
// table. A source that fails or panics contributes no rows; it never stops
// the others.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Source interface {
	ID() string
	LatestNews(ctx context.Context) ([]domain.News, error)
}

// SourceReport describes the outcome of one source within a Collect call.
type SourceReport struct {
	Source   string
	Rows     int
	Err      error
	Duration time.Duration
}

func (r SourceReport) MarshalJSON() ([]byte, error) {
	out := struct {
		Source     string `json:"source"`
		Rows       int    `json:"rows"`
		DurationMs int64  `json:"duration_ms"`
		Error      string `json:"error,omitempty"`
	}{
		Source:     r.Source,
		Rows:       r.Rows,
		DurationMs: r.Duration.Milliseconds(),
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

func (r SourceReport) Failed() bool {
	return r.Err != nil
}

// Report lists per-source outcomes in source order.
type Report []SourceReport

func (r Report) Failed() []SourceReport {
	var out []SourceReport
	for _, s := range r {
		if s.Failed() {
			out = append(out, s)
		}
	}
	return out
}

type Aggregator struct {
	sources     []Source
	concurrency int
}

type Option func(*Aggregator)

// WithConcurrency runs up to n sources at a time. Rows are still concatenated
// in source order.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		a.concurrency = n
	}
}

func New(sources []Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		sources:     sources,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Aggregator) Sources() []string {
	ids := make([]string, len(a.sources))
	for i, s := range a.sources {
		ids[i] = s.ID()
	}
	return ids
}

// Collect runs every source and concatenates their rows.
func (a *Aggregator) Collect(ctx context.Context) (*domain.Table, Report) {
	start := time.Now()
	slog.Info("Collecting news", "sources", len(a.sources), "concurrency", a.concurrency)

	results := make([][]domain.News, len(a.sources))
	report := make(Report, len(a.sources))

	run := func(i int) {
		rows, rep := a.collectOne(ctx, a.sources[i])
		results[i] = rows
		report[i] = rep
	}

	if a.concurrency <= 1 {
		for i := range a.sources {
			run(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(a.concurrency)
		for i := range a.sources {
			g.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	table := domain.NewTable()
	for _, rows := range results {
		table.Append(rows...)
	}

	slog.Info("Collection completed",
		"rows", table.Len(),
		"failed_sources", len(report.Failed()),
		"duration", time.Since(start),
	)
	return table, report
}

func (a *Aggregator) collectOne(ctx context.Context, src Source) (rows []domain.News, rep SourceReport) {
	start := time.Now()
	rep.Source = src.ID()

	defer func() {
		if r := recover(); r != nil {
			rows = nil
			rep.Err = fmt.Errorf("source %s panicked: %v", rep.Source, r)
		}
		rep.Duration = time.Since(start)
		rep.Rows = len(rows)
		if rep.Err != nil {
			slog.Error("Source failed, skipping", "source", rep.Source, "error", rep.Err)
		}
	}()

	rows, err := src.LatestNews(ctx)
	if err != nil {
		rep.Err = err
		return nil, rep
	}
	return rows, rep
}
