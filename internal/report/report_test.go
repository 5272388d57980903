package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() (*domain.Table, aggregator.Report) {
	published := time.Date(2023, 10, 4, 10, 15, 0, 0, time.FixedZone("", 3*3600))
	table := domain.NewTable(
		domain.News{Title: "Первая\nновость", Link: "https://rt.example/1", PublishedAt: published, Text: strings.Repeat("слово ", 40), Source: "rt"},
		domain.News{Title: "Вторая", Link: "https://meduza.example/2", PublishedAt: published, Text: "Коротко.", Source: "meduza"},
	)
	rep := aggregator.Report{
		{Source: "rt", Rows: 1, Duration: 120 * time.Millisecond},
		{Source: "ria", Err: errors.New("transport error for https://ria.example: timeout")},
		{Source: "meduza", Rows: 1, Duration: 2 * time.Second},
	}
	return table, rep
}

func TestWriteTable(t *testing.T) {
	table, rep := sample()
	var buf bytes.Buffer

	require.NoError(t, WriteTable(&buf, table, rep, 20))

	out := buf.String()
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "title"))
	assert.Contains(t, lines[0], "publication_time")
	assert.Contains(t, out, "Первая новость")
	assert.Contains(t, out, "2023-10-04T10:15:00+03:00")
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "timeout")
	assert.Contains(t, out, "120ms")
	assert.Contains(t, out, "2.00s")
}

func TestWriteJSON(t *testing.T) {
	table, rep := sample()
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, table, rep))

	var decoded struct {
		Columns []string         `json:"columns"`
		Rows    []map[string]any `json:"rows"`
		Sources []struct {
			Source     string `json:"source"`
			DurationMs int64  `json:"duration_ms"`
			Error      string `json:"error"`
		} `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, domain.Columns, decoded.Columns)
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, "meduza", decoded.Rows[1]["source"])
	require.Len(t, decoded.Sources, 3)
	assert.NotEmpty(t, decoded.Sources[1].Error)
	assert.Empty(t, decoded.Sources[0].Error)
	assert.Equal(t, int64(2000), decoded.Sources[2].DurationMs)
}

func TestWriteJSONFile_EmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteJSONFile(path, domain.NewTable(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rows": []`)
}
