package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// maxPageSize caps how much of an article page is read.
const maxPageSize = 8 << 20

// PageFetcher downloads article pages and parses them into HTML documents.
type PageFetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

type PageOption func(*PageFetcher)

// WithRateLimit throttles article requests to rps per second. rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) PageOption {
	return func(p *PageFetcher) {
		if rps <= 0 {
			p.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithPageUserAgent(ua string) PageOption {
	return func(p *PageFetcher) {
		p.userAgent = ua
	}
}

func NewPageFetcher(client *http.Client, opts ...PageOption) *PageFetcher {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	p := &PageFetcher{
		client:    client,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Document fetches url and returns the parsed page. The charset is sniffed
// from the page itself (BOM, then <meta> declarations).
func (p *PageFetcher) Document(ctx context.Context, url string) (*goquery.Document, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, apperr.NewTransport(url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.NewTransport(url, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperr.NewTransport(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.NewTransport(url, fmt.Errorf("HTTP error: %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, apperr.NewTransport(url, fmt.Errorf("failed to read body: %w", err))
	}

	doc, err := ParseHTML(body)
	if err != nil {
		return nil, apperr.NewParseWrap("page "+url, err)
	}
	return doc, nil
}

// ParseHTML decodes body using the encoding declared in the document and
// parses it. Undeclared documents that are valid UTF-8 are kept as UTF-8.
func ParseHTML(body []byte) (*goquery.Document, error) {
	enc, name, _ := charset.DetermineEncoding(body, "")
	if name != "utf-8" && !(name == "windows-1252" && utf8.Valid(body)) {
		decoded, err := enc.NewDecoder().Bytes(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		body = decoded
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}
