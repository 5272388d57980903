package extract

import (
	"context"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
)

type rtExtractor struct {
	base
}

// Text is the visible text of the HTML fragment carried in the description.
// Items without a description are valid and yield "".
func (e *rtExtractor) Text(_ context.Context, item feed.Item) string {
	text, err := e.description(item)
	if err != nil {
		e.degrade("text", e.Link(item), err)
		return ""
	}
	return text
}

func (e *rtExtractor) description(item feed.Item) (string, error) {
	fragment := item.Field("description")
	if fragment == "" {
		return "", nil
	}
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", apperr.NewParseWrap("description fragment", err)
	}
	return visibleText(doc.Selection), nil
}
