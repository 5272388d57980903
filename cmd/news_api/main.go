// Package main News Scraper API
// @title News Scraper API
// @version 1.0
// @description Collects news from RSS feeds and serves the normalized rows
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/news-scraper/docs"
	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/api/router"
	"github.com/DjordjeVuckovic/news-scraper/internal/api/server"
	"github.com/DjordjeVuckovic/news-scraper/internal/service"
	"github.com/DjordjeVuckovic/news-scraper/internal/source"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/news-scraper/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run wires and serves the API. It returns instead of exiting so the storage
// sink is closed on every path after it connects.
func run() error {
	appSettings := NewAppConfig()
	appSettings.LoadDotEnv()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return err
	}

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		return err
	}

	var (
		sink          storage.Writer
		healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	)
	if cfg.Storage != nil {
		sink, err = factory.NewWriter(cfg.Storage)
		if err != nil {
			slog.Error("Failed to create storage writer", "error", err)
			return err
		}
		if hc, ok := sink.(pkgserver.HealthChecker); ok {
			healthChecker = hc
		}
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Scraper API is running")
	})

	if sink != nil {
		if err := sink.Connect(s.Context()); err != nil {
			slog.Error("Failed to connect storage", "error", err, "storage", cfg.Storage.Type)
			return err
		}
		defer sink.Close()
	}

	adapters, err := source.Build(cfg.Sources, cfg.Scraper)
	if err != nil {
		slog.Error("Failed to build sources", "error", err)
		return err
	}
	sources := make([]aggregator.Source, len(adapters))
	for i, a := range adapters {
		sources[i] = a
	}

	opts := []service.Option{service.WithBatchSize(cfg.BatchSize)}
	if sink != nil {
		opts = append(opts, service.WithSink(sink))
	}
	newsService := service.NewNewsService(
		cfg.Sources,
		aggregator.New(sources, aggregator.WithConcurrency(cfg.Scraper.SourceWorkers)),
		opts...,
	)

	router.NewNewsRouter(s.Echo, newsService).Bind()

	go newsService.Run(s.Context(), cfg.RefreshInterval)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		return err
	}
	return nil
}
