package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	id    string
	rows  int
	err   error
	panic bool
	delay time.Duration
	calls atomic.Int32
}

func (f *fakeSource) ID() string {
	return f.id
}

func (f *fakeSource) LatestNews(ctx context.Context) ([]domain.News, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.panic {
		panic("boom")
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.News, f.rows)
	for i := range out {
		link := "https://" + f.id + ".example/" + string(rune('a'+i))
		out[i] = domain.News{ID: domain.NewsID(link), Link: link, Source: f.id}
	}
	return out, nil
}

func TestAggregator_Collect_ConcatenatesInSourceOrder(t *testing.T) {
	sources := []Source{
		&fakeSource{id: "rt", rows: 2},
		&fakeSource{id: "ria", rows: 3},
		&fakeSource{id: "meduza", rows: 1},
	}

	table, report := New(sources).Collect(context.Background())

	require.Equal(t, 6, table.Len())
	rows := table.Rows()
	assert.Equal(t, "rt", rows[0].Source)
	assert.Equal(t, "ria", rows[2].Source)
	assert.Equal(t, "meduza", rows[5].Source)
	assert.Empty(t, report.Failed())
	assert.Equal(t, []string{"rt", "ria", "meduza"}, New(sources).Sources())
}

func TestAggregator_Collect_IsolatesFailures(t *testing.T) {
	tests := []struct {
		name    string
		failing *fakeSource
	}{
		{"error", &fakeSource{id: "ria", err: apperr.NewTransport("https://ria.example/rss", errors.New("timeout"))}},
		{"panic", &fakeSource{id: "ria", panic: true}},
	}

	for _, tc := range tests {
		for _, concurrency := range []int{1, 3} {
			t.Run(tc.name, func(t *testing.T) {
				sources := []Source{
					&fakeSource{id: "rt", rows: 2},
					tc.failing,
					&fakeSource{id: "vedomosti", rows: 4},
				}

				table, report := New(sources, WithConcurrency(concurrency)).Collect(context.Background())

				assert.Equal(t, 6, table.Len())
				assert.Empty(t, table.BySource("ria"))
				assert.Len(t, table.BySource("rt"), 2)
				assert.Len(t, table.BySource("vedomosti"), 4)

				require.Len(t, report, 3)
				failed := report.Failed()
				require.Len(t, failed, 1)
				assert.Equal(t, "ria", failed[0].Source)
				assert.Equal(t, 0, failed[0].Rows)
				assert.Equal(t, 4, report[2].Rows)
			})
		}
	}
}

func TestAggregator_Collect_ConcurrentMatchesSequential(t *testing.T) {
	build := func() []Source {
		return []Source{
			&fakeSource{id: "rt", rows: 3, delay: 20 * time.Millisecond},
			&fakeSource{id: "ria", rows: 2},
			&fakeSource{id: "vedomosti", rows: 1, delay: 10 * time.Millisecond},
			&fakeSource{id: "meduza", rows: 2},
		}
	}

	sequential, _ := New(build()).Collect(context.Background())
	concurrent, _ := New(build(), WithConcurrency(4)).Collect(context.Background())

	assert.Equal(t, sequential.Rows(), concurrent.Rows())
}

func TestAggregator_Collect_AllFailing(t *testing.T) {
	sources := []Source{
		&fakeSource{id: "rt", err: errors.New("down")},
		&fakeSource{id: "ria", panic: true},
	}

	table, report := New(sources).Collect(context.Background())

	assert.Equal(t, 0, table.Len())
	assert.Len(t, report.Failed(), 2)
}

func TestAggregator_Collect_CallsEachSourceOnce(t *testing.T) {
	rt := &fakeSource{id: "rt", rows: 1}
	ria := &fakeSource{id: "ria", rows: 1}

	New([]Source{rt, ria}, WithConcurrency(2)).Collect(context.Background())

	assert.Equal(t, int32(1), rt.calls.Load())
	assert.Equal(t, int32(1), ria.calls.Load())
}

func TestSourceReport_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Report{
		{Source: "rt", Rows: 2, Duration: 1500 * time.Millisecond},
		{Source: "ria", Err: errors.New("timeout")},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"source":"rt","rows":2,"duration_ms":1500},
		{"source":"ria","rows":0,"duration_ms":0,"error":"timeout"}
	]`, string(data))
}
