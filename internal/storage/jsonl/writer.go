package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
)

// Writer appends one JSON object per row to a file.
type Writer struct {
	path string

	mu   sync.Mutex
	file *os.File
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Connect(context.Context) error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", w.path, err)
	}
	w.file = f
	return nil
}

func (w *Writer) Write(ctx context.Context, table *domain.Table) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return fmt.Errorf("jsonl writer is not connected")
	}

	buf := bufio.NewWriter(w.file)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	for _, row := range table.Rows() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("failed to encode %s: %w", row.Link, err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", w.path, err)
	}

	slog.Info("Table appended to JSONL file", "path", w.path, "rows", table.Len())
	return nil
}

func (w *Writer) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			slog.Error("Failed to close JSONL file", "path", w.path, "error", err)
		}
		w.file = nil
	}
}
