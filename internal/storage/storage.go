package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
)

// Writer is a sink for collected tables. Connect must succeed before Write.
type Writer interface {
	Connect(ctx context.Context) error
	Write(ctx context.Context, table *domain.Table) error
	Close()
}

// Reader serves stored news back in insertion order.
type Reader interface {
	List(ctx context.Context, q ListQuery) ([]domain.News, int64, error)
}

type ListQuery struct {
	Source string
	Offset int
	Size   int
}

type Type string

const (
	ES     Type = "es"
	PG     Type = "pg"
	SQLite Type = "sqlite"
	InMem  Type = "in_mem"
	JSONL  Type = "jsonl"
)

var Types = []Type{ES, PG, SQLite, InMem, JSONL}
