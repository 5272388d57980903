package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const invisible = "script, style, noscript, template"

func parseFragment(fragment string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(fragment))
}

// visibleText returns the text of sel without script-like elements, trimmed.
func visibleText(sel *goquery.Selection) string {
	sel.Find(invisible).Remove()
	return strings.TrimSpace(sel.Text())
}

func joinTexts(sel *goquery.Selection, sep string) string {
	parts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return strings.Join(parts, sep)
}
