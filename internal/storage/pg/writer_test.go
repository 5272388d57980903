package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/news-scraper/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsRow(source, link, title string) domain.News {
	return domain.News{
		ID:          domain.NewsID(link),
		Title:       title,
		Link:        link,
		PublishedAt: time.Date(2023, 10, 4, 10, 15, 0, 0, time.FixedZone("MSK", 3*3600)),
		Text:        "text of " + title,
		Source:      source,
	}
}

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	pg := pkgtesting.NewPGContainer(ctx, t)

	w := NewWriter(PoolConfig{ConnStr: pg.ConnString})
	require.NoError(t, w.Connect(ctx))
	defer w.Close()

	assert.True(t, NewHealthChecker(w).Healthy(ctx))

	first := domain.NewTable(
		newsRow("rt", "https://rt.example/1", "one"),
		newsRow("ria", "https://ria.example/1", "two"),
		newsRow("ria", "https://ria.example/1", "two again"),
	)
	require.NoError(t, w.Write(ctx, first))

	rows, total, err := w.List(ctx, storage.ListQuery{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)

	// writing the same article again updates it
	require.NoError(t, w.Write(ctx, domain.NewTable(newsRow("rt", "https://rt.example/1", "one, updated"))))

	rows, total, err = w.List(ctx, storage.ListQuery{Source: "rt", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "one, updated", rows[0].Title)
	assert.True(t, rows[0].PublishedAt.Equal(first.Rows()[0].PublishedAt))
}

func TestWriter_WriteBeforeConnect(t *testing.T) {
	w := NewWriter(PoolConfig{ConnStr: "postgres://localhost/none"})

	err := w.Write(context.Background(), domain.NewTable(newsRow("rt", "https://rt.example/1", "one")))

	assert.Error(t, err)
	assert.False(t, NewHealthChecker(w).Healthy(context.Background()))
}
