package extract

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
	"golang.org/x/text/unicode/norm"
)

// meduzaExtractor handles a feed that ships title and body as HTML fragments
// in decomposed-or-not Unicode; both are NFKD-normalized so downstream
// comparison sees one form.
type meduzaExtractor struct {
	base
}

// Title is the first paragraph of the description fragment, falling back to
// the plain item title.
func (e *meduzaExtractor) Title(item feed.Item) string {
	title, err := e.leadParagraph(item)
	if err != nil {
		e.degrade("title", e.Link(item), err)
	}
	if title == "" {
		title = e.base.Title(item)
	}
	return norm.NFKD.String(title)
}

func (e *meduzaExtractor) Text(_ context.Context, item feed.Item) string {
	text, err := e.fullText(item)
	if err != nil {
		e.degrade("text", e.Link(item), err)
		return ""
	}
	return text
}

func (e *meduzaExtractor) leadParagraph(item feed.Item) (string, error) {
	fragment := item.Field("description")
	if fragment == "" {
		return "", nil
	}
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", apperr.NewParseWrap("description fragment", err)
	}
	return strings.TrimSpace(doc.Find("p").First().Text()), nil
}

// fullText joins every paragraph of content:encoded with single spaces.
func (e *meduzaExtractor) fullText(item feed.Item) (string, error) {
	fragment := item.Field("content:encoded")
	if fragment == "" {
		return "", apperr.NewParse("content:encoded is empty")
	}
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", apperr.NewParseWrap("content:encoded fragment", err)
	}
	text := joinTexts(doc.Find("p"), " ")
	return strings.TrimSpace(norm.NFKD.String(text)), nil
}
