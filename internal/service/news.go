// Package service runs collections on demand or on a schedule and serves
// their results.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/collector"
	"github.com/DjordjeVuckovic/news-scraper/internal/config"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/processor"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/in_mem"
)

var ErrRefreshInProgress = errors.New("a refresh is already in progress")

// RefreshResult describes one completed collection.
type RefreshResult struct {
	StartedAt     time.Time         `json:"started_at"`
	Duration      time.Duration     `json:"duration"`
	Written       int               `json:"written"`
	Failed        int               `json:"failed"`
	FailedSources int               `json:"failed_sources"`
	Sources       aggregator.Report `json:"sources"`
}

// NewsService owns the collection pipeline. Collected rows always land in an
// in-memory cache and, when configured, in a persistent sink too.
type NewsService struct {
	sources []config.SourceConfig
	agg     *aggregator.Aggregator
	cache   *in_mem.Writer
	sink    storage.Writer
	reader  storage.Reader
	batch   int

	running atomic.Bool
	mu      sync.RWMutex
	last    *RefreshResult
}

type Option func(*NewsService)

// WithSink also writes every collection to w. When w can serve reads, List
// reads from it instead of the cache.
func WithSink(w storage.Writer) Option {
	return func(s *NewsService) {
		s.sink = w
		if r, ok := factory.AsReader(w); ok {
			s.reader = r
		}
	}
}

func WithBatchSize(n int) Option {
	return func(s *NewsService) {
		s.batch = n
	}
}

func NewNewsService(sources []config.SourceConfig, agg *aggregator.Aggregator, opts ...Option) *NewsService {
	cache := in_mem.NewWriter()
	s := &NewsService{
		sources: sources,
		agg:     agg,
		cache:   cache,
		reader:  cache,
		batch:   500,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *NewsService) Sources() []config.SourceConfig {
	return s.sources
}

// Refresh runs one collection. Only one refresh runs at a time; a concurrent
// call returns ErrRefreshInProgress.
func (s *NewsService) Refresh(ctx context.Context) (*RefreshResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrRefreshInProgress
	}
	defer s.running.Store(false)

	started := time.Now()
	c := collector.NewNewsCollector(s.agg)
	p := processor.NewPipeline(c, storage.NewFanout(s.cache, s.sink),
		processor.WithName("news-refresh"),
		processor.WithBulk(s.batch),
	)

	stats, err := p.Run(ctx)
	if err != nil {
		return nil, err
	}

	res := &RefreshResult{
		StartedAt:     started,
		Duration:      time.Since(started),
		Written:       stats.Written,
		Failed:        stats.Failed,
		FailedSources: stats.FailedSources,
		Sources:       c.Report(),
	}
	s.mu.Lock()
	s.last = res
	s.mu.Unlock()
	return res, nil
}

// LastRefresh returns the latest completed refresh, or nil before the first.
func (s *NewsService) LastRefresh() *RefreshResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *NewsService) List(ctx context.Context, q storage.ListQuery) ([]domain.News, int64, error) {
	return s.reader.List(ctx, q)
}

// Run refreshes immediately and then every interval until ctx is done.
func (s *NewsService) Run(ctx context.Context, interval time.Duration) {
	s.refreshAndLog(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduled refresh stopped")
			return
		case <-ticker.C:
			s.refreshAndLog(ctx)
		}
	}
}

func (s *NewsService) refreshAndLog(ctx context.Context) {
	res, err := s.Refresh(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("Scheduled refresh failed", "error", err)
		}
		return
	}
	slog.Info("Scheduled refresh completed", "written", res.Written, "failed", res.Failed, "duration", res.Duration)
}
