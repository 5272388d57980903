package extract

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/feed"
)

const vedomostiParagraphSelector = "p.box-paragraph__text"

type vedomostiExtractor struct {
	base
	pages PageSource
}

func (e *vedomostiExtractor) Text(ctx context.Context, item feed.Item) string {
	link := e.Link(item)
	text, err := e.paragraphs(ctx, link)
	if err != nil {
		e.degrade("text", link, err)
		return ""
	}
	return text
}

// paragraphs concatenates, with no separator, the styled paragraphs of the
// first top-level block of the page. The site has no full-text feed, so this
// depends on its current markup.
func (e *vedomostiExtractor) paragraphs(ctx context.Context, link string) (string, error) {
	if link == "" {
		return "", apperr.NewParse("article link is empty")
	}
	doc, err := e.pages.Document(ctx, link)
	if err != nil {
		return "", err
	}

	block := doc.Find("div").First()
	if block.Length() == 0 {
		return "", apperr.NewParse("page has no content block")
	}
	found := block.Find(vedomostiParagraphSelector)
	if found.Length() == 0 {
		return "", apperr.NewParse(vedomostiParagraphSelector + " not found")
	}
	return strings.TrimSpace(joinTexts(found, "")), nil
}
