package main

import (
	"log/slog"
	"os"
	"time"

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

type ApiConfig struct {
	Sources         []config.SourceConfig
	Scraper         *config.ScraperConfig
	RefreshInterval time.Duration
	BatchSize       int
	// Storage is nil when STORAGE_TYPE is unset; collected news then live in
	// memory only.
	Storage *factory.StorageConfig
}

func (as *AppConfig) LoadDotEnv() {
	if err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}
	slog.SetLogLoggerLevel(env.Level("LOG_LEVEL"))
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	scraper := config.LoadScraperEnv()

	sources, err := config.LoadSources(scraper.SourcesPath)
	if err != nil {
		return nil, err
	}

	cfg := &ApiConfig{
		Sources:         sources,
		Scraper:         scraper,
		RefreshInterval: env.Duration("REFRESH_INTERVAL", 15*time.Minute),
		BatchSize:       env.Int("BULK_SIZE", 500),
	}

	if os.Getenv("STORAGE_TYPE") != "" {
		storageCfg, err := factory.LoadEnv()
		if err != nil {
			return nil, err
		}
		cfg.Storage = storageCfg
	}

	return cfg, nil
}
