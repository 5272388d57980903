package processor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/news-scraper/internal/collector"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceCollector struct {
	results []collector.Result[domain.News]
}

func (c sliceCollector) Collect(context.Context) (<-chan collector.Result[domain.News], error) {
	out := make(chan collector.Result[domain.News], len(c.results))
	for _, r := range c.results {
		out <- r
	}
	close(out)
	return out, nil
}

type recordingWriter struct {
	mu      sync.Mutex
	batches []int
	fail    bool
}

func (w *recordingWriter) Connect(context.Context) error { return nil }
func (w *recordingWriter) Close()                        {}

func (w *recordingWriter) Write(_ context.Context, table *domain.Table) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("disk full")
	}
	w.batches = append(w.batches, table.Len())
	return nil
}

func rows(n int) []collector.Result[domain.News] {
	out := make([]collector.Result[domain.News], n)
	for i := range out {
		out[i] = collector.Result[domain.News]{Result: domain.News{Source: "rt"}}
	}
	return out
}

func TestNewsPipeline_Bulk(t *testing.T) {
	results := append(rows(5), collector.Result[domain.News]{Err: errors.New("source ria down")})
	w := &recordingWriter{}

	stats, err := NewPipeline(sliceCollector{results}, w, WithBulk(2)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, w.batches)
	assert.Equal(t, 5, stats.Written)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 1, stats.FailedSources)
	assert.Equal(t, 3, stats.Batches)
}

func TestNewsPipeline_Basic(t *testing.T) {
	w := &recordingWriter{}

	stats, err := NewPipeline(sliceCollector{rows(3)}, w, WithName("basic")).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, w.batches)
	assert.Equal(t, 3, stats.Written)
}

func TestNewsPipeline_WriterFailureIsCounted(t *testing.T) {
	w := &recordingWriter{fail: true}

	stats, err := NewPipeline(sliceCollector{rows(4)}, w, WithBulk(10)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Written)
	assert.Equal(t, 4, stats.Failed)
	assert.Equal(t, 0, stats.FailedSources)
}

func TestNewsPipeline_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocking := make(chan collector.Result[domain.News])

	p := NewPipeline(chanCollector(blocking), &recordingWriter{})
	_, err := p.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

type chanCollector chan collector.Result[domain.News]

func (c chanCollector) Collect(context.Context) (<-chan collector.Result[domain.News], error) {
	return c, nil
}
