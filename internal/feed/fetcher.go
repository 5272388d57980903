// Package feed retrieves feed documents and article pages over HTTP.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/mmcdole/gofeed"
)

// Fetcher downloads and parses one feed document per call.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

type FetcherOption func(*Fetcher)

func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

func NewFetcher(client *http.Client, opts ...FetcherOption) *Fetcher {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	f := &Fetcher{
		client:    client,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a single GET and returns every item of the feed in document
// order. The text encoding comes from the XML declaration of the document;
// the Content-Type header is ignored since some feeds misreport it.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.NewTransport(url, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperr.NewTransport(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.NewTransport(url, fmt.Errorf("HTTP error: %s", resp.Status))
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, apperr.NewParseWrap("feed "+url, err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		items = append(items, NewItem(entry))
	}

	if len(items) == 0 {
		slog.Warn("Feed has no items", "url", url)
	} else {
		slog.Info("Feed fetched", "url", url, "items", len(items))
	}
	return items, nil
}
