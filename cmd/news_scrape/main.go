// Command news_scrape collects the latest news from every configured feed
// once, prints the merged table and optionally writes it to storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/report"
	"github.com/DjordjeVuckovic/news-scraper/internal/source"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/factory"
)

func main() {
	var (
		format      = flag.String("format", "text", "output format: text or json")
		sourcesPath = flag.String("sources", "", "YAML sources file (overrides SOURCES_CONFIG_PATH)")
		write       = flag.Bool("write", false, "write the table to the storage selected by STORAGE_TYPE")
		width       = flag.Int("width", report.DefaultTextWidth, "max width of the title and text columns in text output")
	)
	flag.Parse()

	if *format != "text" && *format != "json" {
		fmt.Fprintf(os.Stderr, "unsupported format %q, expected text or json\n", *format)
		os.Exit(2)
	}

	cfg, err := NewAppConfig().Load(*sourcesPath, *write)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapters, err := source.Build(cfg.Sources, cfg.Scraper)
	if err != nil {
		slog.Error("Failed to build sources", "error", err)
		os.Exit(1)
	}

	sources := make([]aggregator.Source, len(adapters))
	for i, a := range adapters {
		sources[i] = a
	}
	agg := aggregator.New(sources, aggregator.WithConcurrency(cfg.Scraper.SourceWorkers))

	table, rep := agg.Collect(ctx)

	if *format == "json" {
		err = report.WriteJSON(os.Stdout, table, rep)
	} else {
		err = report.WriteTable(os.Stdout, table, rep, *width)
	}
	if err != nil {
		slog.Error("Failed to print table", "error", err)
		os.Exit(1)
	}

	if *write {
		if err := writeTable(ctx, cfg.Storage, table); err != nil {
			slog.Error("Failed to write table", "error", err, "storage", cfg.Storage.Type)
			os.Exit(1)
		}
	}

	if len(rep) > 0 && len(rep.Failed()) == len(rep) {
		slog.Error("Every source failed")
		os.Exit(1)
	}
}

func writeTable(ctx context.Context, cfg *factory.StorageConfig, table *domain.Table) error {
	w, err := factory.NewWriter(cfg)
	if err != nil {
		return err
	}
	if err := w.Connect(ctx); err != nil {
		return fmt.Errorf("connect %s: %w", cfg.Type, err)
	}
	defer w.Close()

	return w.Write(ctx, table)
}
