package factory

import (
	"testing"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *StorageConfig)
	}{
		{
			name: "pg",
			env:  map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://u:p@localhost/news", "PG_MAX_CONNS": "8"},
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.Pg)
				assert.Equal(t, "postgres://u:p@localhost/news", cfg.Pg.ConnStr)
				assert.Equal(t, int32(8), cfg.Pg.MaxConns)
			},
		},
		{
			name: "es",
			env:  map[string]string{"STORAGE_TYPE": "ES", "ES_ADDRESSES": "http://a:9200, http://b:9200"},
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.Es)
				assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
				assert.Equal(t, "news", cfg.Es.IndexName)
			},
		},
		{
			name: "sqlite",
			env:  map[string]string{"STORAGE_TYPE": "sqlite", "SQLITE_PATH": "/tmp/n.db"},
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.SQLite)
				assert.Equal(t, "/tmp/n.db", cfg.SQLite.Path)
			},
		},
		{
			name: "jsonl",
			env:  map[string]string{"STORAGE_TYPE": "jsonl"},
			check: func(t *testing.T, cfg *StorageConfig) {
				assert.Equal(t, defaultJSONLPath, cfg.JSONL)
			},
		},
		{
			name: "in_mem",
			env:  map[string]string{"STORAGE_TYPE": "in_mem"},
			check: func(t *testing.T, cfg *StorageConfig) {
				assert.Equal(t, storage.InMem, cfg.Type)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()

			require.NoError(t, err)
			tc.check(t, cfg)

			w, err := NewWriter(cfg)
			require.NoError(t, err)
			assert.NotNil(t, w)
		})
	}
}

func TestLoadEnv_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unset", map[string]string{"STORAGE_TYPE": ""}},
		{"unsupported", map[string]string{"STORAGE_TYPE": "mongo"}},
		{"pg without dsn", map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": ""}},
		{"es without addresses", map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": " , "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := LoadEnv()

			require.Error(t, err)
			assert.True(t, apperr.IsConfig(err))
		})
	}
}

func TestNewWriter_Unsupported(t *testing.T) {
	_, err := NewWriter(&StorageConfig{Type: "mongo"})

	require.Error(t, err)
	assert.True(t, apperr.IsConfig(err))
}

func TestAsReader(t *testing.T) {
	mem, err := NewWriter(&StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	_, ok := AsReader(mem)
	assert.True(t, ok)

	_, ok = AsReader(jsonl.NewWriter("x.jsonl"))
	assert.False(t, ok)
}
