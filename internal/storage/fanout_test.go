package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	rows   int
	err    error
	closed bool
}

func (w *countingWriter) Connect(context.Context) error { return nil }

func (w *countingWriter) Write(_ context.Context, t *domain.Table) error {
	if w.err != nil {
		return w.err
	}
	w.rows += t.Len()
	return nil
}

func (w *countingWriter) Close() { w.closed = true }

func TestFanout_WritesToAll(t *testing.T) {
	a, b := &countingWriter{}, &countingWriter{}
	f := NewFanout(a, nil, b)

	require.NoError(t, f.Connect(context.Background()))
	require.NoError(t, f.Write(context.Background(), domain.NewTable(domain.News{}, domain.News{})))
	f.Close()

	assert.Equal(t, 2, a.rows)
	assert.Equal(t, 2, b.rows)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestFanout_KeepsWritingAfterFailure(t *testing.T) {
	broken := &countingWriter{err: errors.New("connection reset")}
	ok := &countingWriter{}

	err := NewFanout(broken, ok).Write(context.Background(), domain.NewTable(domain.News{}))

	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, 1, ok.rows)
}
