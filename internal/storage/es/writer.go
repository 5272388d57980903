package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/DjordjeVuckovic/news-scraper/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// Writer bulk-indexes news rows. The document id is the row ID, so the same
// article written twice is overwritten rather than duplicated.
type Writer struct {
	config    ClientConfig
	client    *elasticsearch.TypedClient
	indexName string
}

func NewWriter(config ClientConfig) *Writer {
	return &Writer{
		config:    config,
		indexName: config.IndexName,
	}
}

func (w *Writer) Connect(ctx context.Context) error {
	client, err := newClient(w.config)
	if err != nil {
		return fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	w.client = client

	if err := w.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return nil
}

func (w *Writer) Write(ctx context.Context, table *domain.Table) error {
	if w.client == nil {
		return fmt.Errorf("elasticsearch writer is not connected")
	}
	if table.Len() == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         w.indexName,
		Client:        w.client,
		NumWorkers:    2,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	now := time.Now().UTC()

	for _, n := range table.Rows() {
		doc := toDocument(n, now)

		body, err := json.Marshal(doc)
		if err != nil {
			slog.Error("Failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(body),
			OnSuccess: func(context.Context, esutil.BulkIndexerItem, esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("Bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("Bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("Failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", table.Len(),
		"index", w.indexName,
	)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d news", n, table.Len())
	}
	return nil
}

// List returns indexed news, most recently indexed first.
func (w *Writer) List(ctx context.Context, q storage.ListQuery) ([]domain.News, int64, error) {
	if w.client == nil {
		return nil, 0, fmt.Errorf("elasticsearch writer is not connected")
	}

	query := &types.Query{MatchAll: &types.MatchAllQuery{}}
	if q.Source != "" {
		query = &types.Query{
			Term: map[string]types.TermQuery{
				"source": {Value: q.Source},
			},
		}
	}

	desc := sortorder.Desc
	res, err := w.client.Search().
		Index(w.indexName).
		Query(query).
		From(q.Offset).
		Size(q.Size).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"indexed_at": {Order: &desc}}},
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"publication_time": {Order: &desc}}},
		).
		Do(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute search: %w", err)
	}

	out := make([]domain.News, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode document: %w", err)
		}
		n, err := doc.toNews()
		if err != nil {
			return nil, 0, fmt.Errorf("invalid document id %q: %w", doc.ID, err)
		}
		out = append(out, n)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return out, total, nil
}

func (w *Writer) EnsureIndex(ctx context.Context) error {
	exists, err := w.client.Indices.Exists(w.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", w.indexName)
		return nil
	}

	res, err := w.client.Indices.Create(w.indexName).
		Settings(indexSettings()).
		Mappings(indexMappings()).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", w.indexName)
	return nil
}

// Healthy pings the cluster.
func (w *Writer) Healthy(ctx context.Context) bool {
	if w.client == nil {
		return false
	}
	ok, err := w.client.Ping().Do(ctx)
	return err == nil && ok
}

func (w *Writer) Close() {}
