package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS news (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL DEFAULT '',
	link             TEXT NOT NULL DEFAULT '',
	publication_time TEXT NOT NULL,
	text             TEXT NOT NULL DEFAULT '',
	source           TEXT NOT NULL,
	collected_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_news_source ON news(source);
CREATE INDEX IF NOT EXISTS idx_news_collected ON news(collected_at DESC);
`

type Config struct {
	Path string
}

// Writer stores news in a local SQLite file. Rows are keyed by ID and
// replaced on conflict.
type Writer struct {
	cfg Config
	db  *sql.DB
}

func NewWriter(cfg Config) *Writer {
	return &Writer{cfg: cfg}
}

func (w *Writer) Connect(ctx context.Context) error {
	dsn := w.cfg.Path
	memory := dsn == "" || dsn == ":memory:"
	if memory {
		dsn = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if memory {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}
	if !memory {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return fmt.Errorf("enable WAL mode: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	w.db = db
	slog.Info("SQLite database initialized", "path", w.cfg.Path)
	return nil
}

func (w *Writer) Write(ctx context.Context, table *domain.Table) error {
	if w.db == nil {
		return fmt.Errorf("sqlite writer is not connected")
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO news (id, title, link, publication_time, text, source, collected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	collectedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for _, n := range table.Rows() {
		if n.ID == uuid.Nil {
			n.ID = uuid.New()
		}
		_, err := stmt.ExecContext(ctx,
			n.ID.String(),
			n.Title,
			n.Link,
			n.PublishedAt.Format(time.RFC3339),
			n.Text,
			n.Source,
			collectedAt,
		)
		if err != nil {
			return fmt.Errorf("insert news %s: %w", n.Link, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	slog.Info("Table written to SQLite", "rows", table.Len())
	return nil
}

func (w *Writer) List(ctx context.Context, q storage.ListQuery) ([]domain.News, int64, error) {
	if w.db == nil {
		return nil, 0, fmt.Errorf("sqlite writer is not connected")
	}

	var total int64
	err := w.db.QueryRowContext(ctx,
		`SELECT count(*) FROM news WHERE ?1 = '' OR source = ?1`, q.Source,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count news: %w", err)
	}

	rows, err := w.db.QueryContext(ctx, `
		SELECT id, title, link, publication_time, text, source
		FROM news
		WHERE ?1 = '' OR source = ?1
		ORDER BY collected_at DESC, publication_time DESC, rowid
		LIMIT ?2 OFFSET ?3`,
		q.Source, q.Size, q.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query news: %w", err)
	}
	defer rows.Close()

	var out []domain.News
	for rows.Next() {
		var (
			n         domain.News
			id, stamp string
		)
		if err := rows.Scan(&id, &n.Title, &n.Link, &stamp, &n.Text, &n.Source); err != nil {
			return nil, 0, fmt.Errorf("scan news: %w", err)
		}
		if n.ID, err = uuid.Parse(id); err != nil {
			return nil, 0, fmt.Errorf("invalid id %q: %w", id, err)
		}
		if n.PublishedAt, err = time.Parse(time.RFC3339, stamp); err != nil {
			return nil, 0, fmt.Errorf("invalid publication_time %q: %w", stamp, err)
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}

func (w *Writer) Close() {
	if w.db != nil {
		w.db.Close()
	}
}

func (w *Writer) Healthy(ctx context.Context) bool {
	return w.db != nil && w.db.PingContext(ctx) == nil
}
