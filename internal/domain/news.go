package domain

import (
	"time"

	"github.com/google/uuid"
)

// News is one normalized feed entry. Link doubles as the record key.
type News struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"publication_time"`
	Text        string    `json:"text"`
	Source      string    `json:"source"`
}

// NewsID derives a stable identifier from the article link, so the same
// article maps to the same key across runs and storage backends.
func NewsID(link string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link))
}
