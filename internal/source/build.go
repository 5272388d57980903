package source

import (
	"fmt"

	"github.com/DjordjeVuckovic/news-scraper/internal/config"
	"github.com/DjordjeVuckovic/news-scraper/internal/extract"
	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
)

// Build wires one adapter per configured source, sharing a single HTTP
// client and page fetcher between them. An unknown extractor kind is a
// configuration error and nothing is built.
func Build(sources []config.SourceConfig, cfg *config.ScraperConfig) ([]*Adapter, error) {
	client := feed.NewHTTPClient(cfg.HTTPTimeout)
	fetcher := feed.NewFetcher(client, feed.WithUserAgent(cfg.UserAgent))
	pages := feed.NewPageFetcher(client,
		feed.WithPageUserAgent(cfg.UserAgent),
		feed.WithRateLimit(cfg.ArticleRPS, max(cfg.ArticleWorkers, 1)),
	)

	adapters := make([]*Adapter, 0, len(sources))
	for _, src := range sources {
		ex, err := extract.New(src.Extractor, pages)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.ID, err)
		}
		adapters = append(adapters, New(src, fetcher, ex, WithWorkers(cfg.ArticleWorkers)))
	}
	return adapters, nil
}
