package config

import (
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
	"github.com/DjordjeVuckovic/news-scraper/pkg/config/env"
)

// ScraperConfig tunes fetching. Workers <= 1 means sequential.
type ScraperConfig struct {
	SourcesPath    string
	HTTPTimeout    time.Duration
	ArticleWorkers int
	SourceWorkers  int
	ArticleRPS     float64
	UserAgent      string
}

func LoadScraperEnv() *ScraperConfig {
	return &ScraperConfig{
		SourcesPath:    env.String("SOURCES_CONFIG_PATH", ""),
		HTTPTimeout:    env.Duration("HTTP_TIMEOUT", feed.DefaultTimeout),
		ArticleWorkers: env.Int("ARTICLE_WORKERS", 1),
		SourceWorkers:  env.Int("SOURCE_WORKERS", 1),
		ArticleRPS:     env.Float("ARTICLE_RPS", 0),
		UserAgent:      env.String("USER_AGENT", feed.DefaultUserAgent),
	}
}
