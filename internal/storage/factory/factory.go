package factory

import (
	"fmt"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/es"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/jsonl"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/sqlite"
)

// NewWriter builds the writer selected by cfg. It is not connected yet.
func NewWriter(cfg *StorageConfig) (storage.Writer, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, apperr.NewConfig("missing PostgreSQL configuration")
		}
		return pg.NewWriter(*cfg.Pg), nil
	case storage.ES:
		if cfg.Es == nil {
			return nil, apperr.NewConfig("missing Elasticsearch configuration")
		}
		return es.NewWriter(*cfg.Es), nil
	case storage.SQLite:
		if cfg.SQLite == nil {
			return nil, apperr.NewConfig("missing SQLite configuration")
		}
		return sqlite.NewWriter(*cfg.SQLite), nil
	case storage.JSONL:
		return jsonl.NewWriter(cfg.JSONL), nil
	case storage.InMem:
		return in_mem.NewWriter(), nil
	default:
		return nil, apperr.NewConfig(fmt.Sprintf("unsupported storage type: %s", cfg.Type))
	}
}

// AsReader returns w as a storage.Reader when the backend can serve reads.
func AsReader(w storage.Writer) (storage.Reader, bool) {
	r, ok := w.(storage.Reader)
	return r, ok
}
