package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
)

// Fanout writes every table to all of its writers. A failing writer does not
// stop the others; their errors are joined.
type Fanout struct {
	writers []Writer
}

func NewFanout(writers ...Writer) *Fanout {
	var ws []Writer
	for _, w := range writers {
		if w != nil {
			ws = append(ws, w)
		}
	}
	return &Fanout{writers: ws}
}

func (f *Fanout) Connect(ctx context.Context) error {
	for _, w := range f.writers {
		if err := w.Connect(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fanout) Write(ctx context.Context, table *domain.Table) error {
	var errs []error
	for _, w := range f.writers {
		if err := w.Write(ctx, table); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *Fanout) Close() {
	for _, w := range f.writers {
		w.Close()
	}
}
