package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/collector"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
)

const defaultBatchSize = 500

// Pipeline defines the interface for data processing pipelines
type Pipeline interface {
	Run(ctx context.Context) (*Stats, error)
}

type BulkOptions struct {
	Enabled bool
	Size    int
}

type PipelineConfig struct {
	Name string
	Bulk *BulkOptions
}

// Stats summarizes one pipeline run.
// Failed counts rows whose batch write failed; FailedSources counts
// collection results that carried an error instead of a row.
type Stats struct {
	Written       int
	Failed        int
	FailedSources int
	Batches       int
	Duration      time.Duration
}

// NewsPipeline moves collected news into a writer.
type NewsPipeline struct {
	collector collector.Collector[domain.News]
	writer    storage.Writer
	config    *PipelineConfig
}

type PipelineOption func(pipeline *NewsPipeline)

// WithBulk writes rows in tables of at most size rows.
func WithBulk(size int) PipelineOption {
	return func(pipeline *NewsPipeline) {
		if pipeline.config.Bulk == nil {
			pipeline.config.Bulk = &BulkOptions{}
		}
		pipeline.config.Bulk.Enabled = true
		if size > 0 {
			pipeline.config.Bulk.Size = size
		}
	}
}

func WithName(name string) PipelineOption {
	return func(pipeline *NewsPipeline) {
		pipeline.config.Name = name
	}
}

func NewPipeline(c collector.Collector[domain.News], w storage.Writer, opts ...PipelineOption) *NewsPipeline {
	p := &NewsPipeline{
		collector: c,
		writer:    w,
		config: &PipelineConfig{
			Name: "news-pipeline",
			Bulk: &BulkOptions{
				Enabled: false,
				Size:    defaultBatchSize,
			},
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run drains the collector into the writer. Rows that fail to collect or to
// write are counted and logged; only a cancelled context ends the run early.
func (p *NewsPipeline) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()
	slog.Info("🛫 Starting pipeline run",
		"pipeline", p.config.Name,
		"bulk_enabled", p.config.Bulk.Enabled,
		"batch_size", p.config.Bulk.Size,
	)

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting news", "error", err, "pipeline", p.config.Name)
		return nil, err
	}

	size := 1
	if p.config.Bulk.Enabled {
		size = p.config.Bulk.Size
	}

	stats := &Stats{}
	runErr := p.process(ctx, results, size, stats)
	stats.Duration = time.Since(start)

	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"written", stats.Written,
		"failed", stats.Failed,
		"failed_sources", stats.FailedSources,
		"batches", stats.Batches,
		"duration", stats.Duration,
		"error", runErr,
	)
	return stats, runErr
}

func (p *NewsPipeline) process(ctx context.Context, results <-chan collector.Result[domain.News], size int, stats *Stats) error {
	batch := make([]domain.News, 0, size)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := p.writer.Write(ctx, domain.NewTable(batch...)); err != nil {
			slog.Error("Error writing news batch",
				"error", err,
				"count", len(batch),
				"pipeline", p.config.Name,
			)
			stats.Failed += len(batch)
		} else {
			stats.Written += len(batch)
			stats.Batches++
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping",
				"pipeline", p.config.Name,
				"pending_batch", len(batch),
			)
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				flush()
				return nil
			}
			if res.Err != nil {
				slog.Warn("Skipping failed collection result", "error", res.Err, "pipeline", p.config.Name)
				stats.FailedSources++
				continue
			}
			batch = append(batch, res.Result)
			if len(batch) >= size {
				flush()
			}
		}
	}
}
