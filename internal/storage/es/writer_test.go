package es

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/news-scraper/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsRow(source, link, title string) domain.News {
	return domain.News{
		ID:          domain.NewsID(link),
		Title:       title,
		Link:        link,
		PublishedAt: time.Date(2023, 10, 4, 7, 15, 0, 0, time.UTC),
		Text:        "Текст новости " + title,
		Source:      source,
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	n := newsRow("rt", "https://rt.example/1", "one")

	doc := toDocument(n, time.Now())
	back, err := doc.toNews()

	require.NoError(t, err)
	assert.Equal(t, n, back)
}

func TestDocument_AssignsIDWhenMissing(t *testing.T) {
	doc := toDocument(domain.News{Title: "no link"}, time.Now())

	id, err := uuid.Parse(doc.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestWriter_WriteBeforeConnect(t *testing.T) {
	w := NewWriter(ClientConfig{Addresses: []string{"http://localhost:1"}, IndexName: "news"})

	assert.Error(t, w.Write(context.Background(), domain.NewTable(newsRow("rt", "https://rt.example/1", "one"))))
	assert.False(t, w.Healthy(context.Background()))
}

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	w := NewWriter(ClientConfig{Addresses: []string{container.Address}, IndexName: "news_test"})
	require.NoError(t, w.Connect(ctx))
	defer w.Close()
	assert.True(t, w.Healthy(ctx))

	require.NoError(t, w.Write(ctx, domain.NewTable(
		newsRow("rt", "https://rt.example/1", "one"),
		newsRow("meduza", "https://meduza.example/1", "two"),
	)))
	require.NoError(t, w.Write(ctx, domain.NewTable(newsRow("rt", "https://rt.example/1", "one, updated"))))

	rows, total, err := w.List(ctx, storage.ListQuery{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)

	rows, total, err = w.List(ctx, storage.ListQuery{Source: "rt", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "one, updated", rows[0].Title)
}
