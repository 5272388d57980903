package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/es"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/sqlite"
	"github.com/DjordjeVuckovic/news-scraper/pkg/config/env"
	"github.com/DjordjeVuckovic/news-scraper/pkg/stringsutil"
)

const defaultJSONLPath = "news.jsonl"

type StorageConfig struct {
	storage.Type
	Pg     *pg.PoolConfig
	Es     *es.ClientConfig
	SQLite *sqlite.Config
	JSONL  string
}

// LoadEnv reads the storage selection from STORAGE_TYPE and the settings of
// the selected backend. An unset or unknown type is a configuration error.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_TYPE"))))
	if storageType == "" {
		return nil, apperr.NewConfig("STORAGE_TYPE environment variable is not set")
	}
	if !slices.Contains(storage.Types, storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, apperr.NewConfig(fmt.Sprintf(
			"unsupported STORAGE_TYPE: %s, expected one of %v", storageType, storage.Types))
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses:  splitNonEmpty(os.Getenv("ES_ADDRESSES")),
			IndexName:  env.String("ES_INDEX_NAME", "news"),
			Username:   os.Getenv("ES_USERNAME"),
			Password:   os.Getenv("ES_PASSWORD"),
			MaxRetries: env.Int("ES_MAX_RETRIES", 0),
		}
		if len(cfg.Es.Addresses) == 0 {
			return nil, apperr.NewConfig("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr:  os.Getenv("PG_CONNECTION_STRING"),
			MaxConns: int32(env.Int("PG_MAX_CONNS", 0)),
			MinConns: int32(env.Int("PG_MIN_CONNS", 0)),
		}
		if cfg.Pg.ConnStr == "" {
			return nil, apperr.NewConfig("PG_CONNECTION_STRING environment variable is not set")
		}
	case storage.SQLite:
		cfg.SQLite = &sqlite.Config{Path: env.String("SQLITE_PATH", "news.db")}
	case storage.JSONL:
		cfg.JSONL = env.String("JSONL_PATH", defaultJSONLPath)
	}

	return cfg, nil
}

func splitNonEmpty(s string) []string {
	return stringsutil.RemoveEmptyStrings(strings.Split(s, ","))
}
