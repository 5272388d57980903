package extract

import (
	"context"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
)

const (
	riaContentSelector = "div.page"
	riaBodySelector    = `div[itemprop="articleBody"]`
)

type riaExtractor struct {
	base
	pages PageSource
}

func (e *riaExtractor) Text(ctx context.Context, item feed.Item) string {
	link := e.Link(item)
	text, err := e.articleBody(ctx, link)
	if err != nil {
		e.degrade("text", link, err)
		return ""
	}
	return text
}

// articleBody reads the page at link and returns the text of the articleBody
// block nested in the page content region. A missing block is a parse error.
func (e *riaExtractor) articleBody(ctx context.Context, link string) (string, error) {
	if link == "" {
		return "", apperr.NewParse("article link is empty")
	}
	doc, err := e.pages.Document(ctx, link)
	if err != nil {
		return "", err
	}

	content := doc.Find(riaContentSelector).First()
	if content.Length() == 0 {
		return "", apperr.NewParse(riaContentSelector + " not found")
	}
	body := content.Find(riaBodySelector).First()
	if body.Length() == 0 {
		return "", apperr.NewParse(riaBodySelector + " not found")
	}
	return visibleText(body), nil
}
