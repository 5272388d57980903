package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	id   string
	rows []domain.News
	err  error
}

func (s stubSource) ID() string { return s.id }

func (s stubSource) LatestNews(context.Context) ([]domain.News, error) {
	return s.rows, s.err
}

func TestNewsCollector_Collect(t *testing.T) {
	agg := aggregator.New([]aggregator.Source{
		stubSource{id: "rt", rows: []domain.News{{Title: "a", Source: "rt"}, {Title: "b", Source: "rt"}}},
		stubSource{id: "ria", err: errors.New("feed down")},
		stubSource{id: "meduza", rows: []domain.News{{Title: "c", Source: "meduza"}}},
	})
	c := NewNewsCollector(agg)

	results, err := c.Collect(context.Background())
	require.NoError(t, err)

	var titles []string
	var errs []error
	for res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		titles = append(titles, res.Result.Title)
	}

	assert.Equal(t, []string{"a", "b", "c"}, titles)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "ria")
	assert.Len(t, c.Report(), 3)
}

func TestNewsCollector_StopsOnCancel(t *testing.T) {
	agg := aggregator.New([]aggregator.Source{
		stubSource{id: "rt", rows: make([]domain.News, 10)},
	})
	ctx, cancel := context.WithCancel(context.Background())

	results, err := NewNewsCollector(agg).Collect(ctx)
	require.NoError(t, err)
	<-results
	cancel()

	for range results {
	}
}
