package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is one raw feed entry. Extractors read it by field name only.
type Item struct {
	entry *gofeed.Item
}

func NewItem(entry *gofeed.Item) Item {
	return Item{entry: entry}
}

// Field returns the named sub-field of the entry, or "" when it is absent.
// Besides the well-known RSS names, "prefix:name" looks up namespaced
// extension elements (e.g. "dc:creator").
func (i Item) Field(name string) string {
	if i.entry == nil {
		return ""
	}
	switch strings.ToLower(name) {
	case "title":
		return i.entry.Title
	case "guid":
		return i.entry.GUID
	case "link":
		return i.entry.Link
	case "pubdate", "published":
		return i.entry.Published
	case "updated":
		return i.entry.Updated
	case "description":
		return i.entry.Description
	case "content:encoded", "content":
		return i.entry.Content
	}

	if prefix, local, ok := strings.Cut(name, ":"); ok {
		if exts, found := i.entry.Extensions[prefix][local]; found && len(exts) > 0 {
			return exts[0].Value
		}
		return ""
	}
	return i.entry.Custom[name]
}

// PublishedFallback is the feed library's own lenient parse of the
// publication date, nil when it could not make sense of it either.
func (i Item) PublishedFallback() *time.Time {
	if i.entry == nil {
		return nil
	}
	if i.entry.PublishedParsed != nil {
		return i.entry.PublishedParsed
	}
	return i.entry.UpdatedParsed
}
