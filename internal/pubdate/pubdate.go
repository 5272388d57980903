// Package pubdate parses RSS publication dates into zoned instants.
package pubdate

import (
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
)

// Layout is the date part of an RFC 822 pubDate once the weekday is removed.
// A single-digit day is accepted.
const Layout = "2 Jan 2006 15:04:05 -0700"

// Parse turns "Wed, 04 Oct 2023 10:15:00 +0300" into 2023-10-04T10:15:00+03:00.
// The leading "weekday," segment is dropped; a value without a comma is parsed
// as it is. The result always carries the offset found in the input.
func Parse(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, apperr.NewParse("empty pubDate")
	}
	if _, rest, found := strings.Cut(value, ","); found {
		value = strings.TrimSpace(rest)
	}

	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, apperr.NewParseWrap("pubDate "+raw, err)
	}
	return t, nil
}
