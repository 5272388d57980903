package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-scraper/internal/config"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-scraper/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ScrapeConfig struct {
	Sources []config.SourceConfig
	Scraper *config.ScraperConfig
	Storage *factory.StorageConfig
}

// Load reads the scraper settings. Storage settings are read only when the
// table is going to be written.
func (as *AppConfig) Load(sourcesPath string, withStorage bool) (*ScrapeConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/news_scrape/.env"); err != nil {
		return nil, err
	}
	slog.SetLogLoggerLevel(env.Level("LOG_LEVEL"))

	scraper := config.LoadScraperEnv()
	if sourcesPath != "" {
		scraper.SourcesPath = sourcesPath
	}

	sources, err := config.LoadSources(scraper.SourcesPath)
	if err != nil {
		return nil, err
	}

	cfg := &ScrapeConfig{
		Sources: sources,
		Scraper: scraper,
	}

	if withStorage {
		storageCfg, err := factory.LoadEnv()
		if err != nil {
			return nil, err
		}
		cfg.Storage = storageCfg
	}

	return cfg, nil
}
