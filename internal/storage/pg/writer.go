package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	newsTable  = "news"
	stageTable = "news_stage"
)

var copyColumns = []string{"id", "title", "link", "publication_time", "text", "source"}

// Writer appends tables to the news relation. Rows are bulk-copied into a
// transaction-scoped staging table and merged on id, so writing the same
// article twice updates it instead of failing.
type Writer struct {
	cfg  PoolConfig
	pool *ConnectionPool
}

func NewWriter(cfg PoolConfig) *Writer {
	return &Writer{cfg: cfg}
}

func (w *Writer) Connect(ctx context.Context) error {
	pool, err := NewConnectionPool(ctx, w.cfg)
	if err != nil {
		return err
	}
	w.pool = pool
	slog.Info("Connected to PostgreSQL")
	return nil
}

func (w *Writer) Write(ctx context.Context, table *domain.Table) error {
	if w.pool == nil {
		return fmt.Errorf("postgres writer is not connected")
	}
	if table.Len() == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, table.Len())
	for _, n := range table.Rows() {
		if n.ID == uuid.Nil {
			n.ID = uuid.New()
		}
		rows = append(rows, []interface{}{n.ID, n.Title, n.Link, n.PublishedAt, n.Text, n.Source})
	}

	tx, err := w.pool.GetConn().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `CREATE TEMP TABLE `+stageTable+` (LIKE `+newsTable+` INCLUDING DEFAULTS) ON COMMIT DROP`)
	if err != nil {
		return fmt.Errorf("failed to create staging table: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{stageTable}, copyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk copy news: %w", err)
	}

	merge := `
		INSERT INTO ` + newsTable + ` (id, title, link, publication_time, text, source)
		SELECT DISTINCT ON (id) id, title, link, publication_time, text, source
		FROM ` + stageTable + `
		ORDER BY id, publication_time DESC
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			publication_time = EXCLUDED.publication_time,
			text = EXCLUDED.text,
			collected_at = now()
	`
	tag, err := tx.Exec(ctx, merge)
	if err != nil {
		return fmt.Errorf("failed to merge news: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit news: %w", err)
	}

	slog.Info("Table written to PostgreSQL", "copied", copied, "merged", tag.RowsAffected())
	return nil
}

// List returns stored news, newest collection first.
func (w *Writer) List(ctx context.Context, q storage.ListQuery) ([]domain.News, int64, error) {
	if w.pool == nil {
		return nil, 0, fmt.Errorf("postgres writer is not connected")
	}
	db := w.pool.GetConn()

	var total int64
	if err := db.QueryRow(ctx,
		`SELECT count(*) FROM `+newsTable+` WHERE $1 = '' OR source = $1`, q.Source,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	rows, err := db.Query(ctx, `
		SELECT id, title, link, publication_time, text, source
		FROM `+newsTable+`
		WHERE $1 = '' OR source = $1
		ORDER BY collected_at DESC, publication_time DESC, id
		OFFSET $2 LIMIT $3`,
		q.Source, q.Offset, q.Size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query news: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.News, error) {
		var n domain.News
		err := row.Scan(&n.ID, &n.Title, &n.Link, &n.PublishedAt, &n.Text, &n.Source)
		return n, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan news: %w", err)
	}
	return out, total, nil
}

func (w *Writer) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}
