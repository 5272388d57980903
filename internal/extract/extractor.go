// Package extract turns raw feed items into normalized field values.
//
// Each supported source has one extractor kind. All kinds share the default
// title, link and time rules and differ only in how the article text is
// found. Extraction never fails: a field that cannot be resolved is logged
// and left empty (or zero for the time) so the rest of the record and the
// rest of the batch go on.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
	"github.com/DjordjeVuckovic/news-scraper/internal/pubdate"
	"github.com/PuerkitoBio/goquery"
)

type Kind string

const (
	// KindRT reads the article body embedded in the item description.
	KindRT Kind = "rt"
	// KindRIA fetches the article page and reads its articleBody block.
	KindRIA Kind = "ria"
	// KindVedomosti fetches the article page and joins its styled paragraphs.
	KindVedomosti Kind = "vedomosti"
	// KindMeduza reads title and body fragments from the item and NFKD-normalizes them.
	KindMeduza Kind = "meduza"
)

var Kinds = []Kind{KindRT, KindRIA, KindVedomosti, KindMeduza}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", apperr.NewConfig(fmt.Sprintf("unsupported extractor kind: %q, expected one of %v", s, Kinds))
}

type Extractor interface {
	Kind() Kind
	Title(item feed.Item) string
	Link(item feed.Item) string
	Time(item feed.Item) time.Time
	Text(ctx context.Context, item feed.Item) string
}

// PageSource fetches and parses an article page.
type PageSource interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

// New returns the extractor for kind. Kinds that read the article page need
// a non-nil pages source.
func New(kind Kind, pages PageSource) (Extractor, error) {
	b := base{kind: kind}
	switch kind {
	case KindRT:
		return &rtExtractor{base: b}, nil
	case KindMeduza:
		return &meduzaExtractor{base: b}, nil
	case KindRIA, KindVedomosti:
		if pages == nil {
			return nil, apperr.NewConfig(fmt.Sprintf("extractor %q requires a page fetcher", kind))
		}
		if kind == KindRIA {
			return &riaExtractor{base: b, pages: pages}, nil
		}
		return &vedomostiExtractor{base: b, pages: pages}, nil
	default:
		return nil, apperr.NewConfig(fmt.Sprintf("unsupported extractor kind: %q", kind))
	}
}

type base struct {
	kind Kind
}

func (b base) Kind() Kind {
	return b.kind
}

func (b base) Title(item feed.Item) string {
	return strings.TrimSpace(item.Field("title"))
}

// Link is the guid when it is an absolute URL, the item link otherwise.
func (b base) Link(item feed.Item) string {
	for _, field := range []string{"guid", "link"} {
		if v := strings.TrimSpace(item.Field(field)); isAbsoluteURL(v) {
			return v
		}
	}
	b.degrade("link", item.Field("guid"), apperr.NewParse("no absolute URL in guid or link"))
	return ""
}

// Time parses pubDate strictly, then falls back to the feed parser's lenient
// result, then to the zero instant (UTC).
func (b base) Time(item feed.Item) time.Time {
	raw := item.Field("pubDate")
	t, err := pubdate.Parse(raw)
	if err == nil {
		return t
	}
	if fallback := item.PublishedFallback(); fallback != nil {
		slog.Debug("Using lenient pubDate", "extractor", b.kind, "raw", raw)
		return *fallback
	}
	b.degrade("publication_time", item.Field("guid"), err)
	return time.Time{}
}

func (b base) degrade(field, link string, err error) {
	slog.Warn("Field extraction failed, using empty value",
		"extractor", b.kind,
		"field", field,
		"link", link,
		"error", err,
	)
}

func isAbsoluteURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}
