package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/google/uuid"
)

// Writer keeps every written row in memory. A row whose ID was already
// written replaces the old one in place.
type Writer struct {
	storageLock sync.RWMutex
	rows        []domain.News
	index       map[uuid.UUID]int
}

func NewWriter() *Writer {
	return &Writer{
		index: make(map[uuid.UUID]int),
	}
}

func (w *Writer) Connect(context.Context) error {
	return nil
}

func (w *Writer) Write(_ context.Context, table *domain.Table) error {
	w.storageLock.Lock()
	defer w.storageLock.Unlock()

	added := 0
	for _, row := range table.Rows() {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		if i, ok := w.index[row.ID]; ok {
			w.rows[i] = row
			continue
		}
		w.index[row.ID] = len(w.rows)
		w.rows = append(w.rows, row)
		added++
	}

	slog.Info("Table written to in-memory storage", "rows", table.Len(), "added", added, "total", len(w.rows))
	return nil
}

func (w *Writer) List(_ context.Context, q storage.ListQuery) ([]domain.News, int64, error) {
	w.storageLock.RLock()
	defer w.storageLock.RUnlock()

	filtered := w.rows
	if q.Source != "" {
		filtered = domain.NewTable(w.rows...).BySource(q.Source)
	}
	page := domain.NewTable(filtered...).Page(q.Offset, q.Size)
	return page, int64(len(filtered)), nil
}

func (w *Writer) Len() int {
	w.storageLock.RLock()
	defer w.storageLock.RUnlock()
	return len(w.rows)
}

func (w *Writer) Close() {}
