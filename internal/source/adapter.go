// Package source binds one configured feed to its extractor and produces
// normalized news rows for it.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/config"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/extract"
	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
	"golang.org/x/sync/errgroup"
)

// FeedFetcher retrieves the items of one feed document.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]feed.Item, error)
}

type Adapter struct {
	cfg       config.SourceConfig
	fetcher   FeedFetcher
	extractor extract.Extractor
	workers   int
	logger    *slog.Logger
}

type Option func(*Adapter)

// WithWorkers bounds the number of items extracted in parallel. n <= 1 keeps
// extraction sequential.
func WithWorkers(n int) Option {
	return func(a *Adapter) {
		a.workers = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func New(cfg config.SourceConfig, fetcher FeedFetcher, extractor extract.Extractor, opts ...Option) *Adapter {
	a := &Adapter{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		workers:   1,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("source", cfg.ID)
	return a
}

func (a *Adapter) ID() string {
	return a.cfg.ID
}

// LatestNews fetches the feed once and returns one row per item in feed
// order. A feed-level failure is returned as is; field-level failures only
// leave the affected field empty.
func (a *Adapter) LatestNews(ctx context.Context) ([]domain.News, error) {
	start := time.Now()
	items, err := a.fetcher.Fetch(ctx, a.cfg.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", a.cfg.ID, err)
	}

	texts := newTextMemo()
	rows := make([]domain.News, len(items))

	if a.workers <= 1 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rows[i] = a.safeBuildRow(ctx, i, item, texts)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.workers)
		for i, item := range items {
			g.Go(func() error {
				rows[i] = a.safeBuildRow(gctx, i, item, texts)
				return nil
			})
		}
		_ = g.Wait()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	a.logger.Info("Source collected",
		"rows", len(rows),
		"workers", a.workers,
		"duration", time.Since(start),
	)
	return rows, nil
}

// safeBuildRow builds the row of item i and turns a panic into its
// fallback row, so one bad item never takes the source down.
func (a *Adapter) safeBuildRow(ctx context.Context, i int, item feed.Item, texts *textMemo) (row domain.News) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Item extraction panicked", "index", i, "panic", r)
			row = a.fallbackRow(item)
		}
	}()
	return a.buildRow(ctx, item, texts)
}

func (a *Adapter) buildRow(ctx context.Context, item feed.Item, texts *textMemo) domain.News {
	link := a.extractor.Link(item)
	row := domain.News{
		ID:          domain.NewsID(link),
		Title:       a.extractor.Title(item),
		Link:        link,
		PublishedAt: a.extractor.Time(item),
		Source:      a.cfg.ID,
	}
	if link == "" {
		row.ID = domain.NewsID(a.cfg.ID + "|" + item.Field("guid") + "|" + row.Title)
		row.Text = a.extractor.Text(ctx, item)
		return row
	}
	row.Text = texts.get(link, func() string {
		return a.extractor.Text(ctx, item)
	})
	return row
}

// fallbackRow keeps the item in the output when extraction blew up.
func (a *Adapter) fallbackRow(item feed.Item) domain.News {
	return domain.News{
		ID:     domain.NewsID(a.cfg.ID + "|" + item.Field("guid")),
		Title:  item.Field("title"),
		Source: a.cfg.ID,
	}
}

// textMemo extracts the text of each link at most once per invocation.
type textMemo struct {
	mu      sync.Mutex
	entries map[string]*memoEntry
}

type memoEntry struct {
	once sync.Once
	text string
}

func newTextMemo() *textMemo {
	return &textMemo{entries: make(map[string]*memoEntry)}
}

func (m *textMemo) get(link string, extract func() string) string {
	m.mu.Lock()
	e, ok := m.entries[link]
	if !ok {
		e = &memoEntry{}
		m.entries[link] = e
	}
	m.mu.Unlock()

	e.once.Do(func() {
		e.text = extract()
	})
	return e.text
}
