package es

import (
	"time"

	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// Document is the indexed form of one news row.
type Document struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Link            string    `json:"link"`
	PublicationTime time.Time `json:"publication_time"`
	Text            string    `json:"text"`
	Source          string    `json:"source"`
	IndexedAt       time.Time `json:"indexed_at"`
}

func toDocument(n domain.News, now time.Time) Document {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return Document{
		ID:              n.ID.String(),
		Title:           n.Title,
		Link:            n.Link,
		PublicationTime: n.PublishedAt,
		Text:            n.Text,
		Source:          n.Source,
		IndexedAt:       now,
	}
}

func (d Document) toNews() (domain.News, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.News{}, err
	}
	return domain.News{
		ID:          id,
		Title:       d.Title,
		Link:        d.Link,
		PublishedAt: d.PublicationTime,
		Text:        d.Text,
		Source:      d.Source,
	}, nil
}

const (
	titleAnalyzer   = "news_analyzer"
	russianAnalyzer = "russian"
)

func indexSettings() *types.IndexSettings {
	return &types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				titleAnalyzer: types.StandardAnalyzer{
					Stopwords: []string{"_none_"},
				},
			},
		},
	}
}

func indexMappings() *types.TypeMapping {
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":               types.NewKeywordProperty(),
			"title":            textWithKeyword(titleAnalyzer),
			"link":             types.NewKeywordProperty(),
			"publication_time": types.NewDateProperty(),
			"text":             textProperty(russianAnalyzer),
			"source":           types.NewKeywordProperty(),
			"indexed_at":       types.NewDateProperty(),
		},
	}
}

func textProperty(analyzer string) types.Property {
	p := types.NewTextProperty()
	if analyzer != "" {
		p.Analyzer = &analyzer
	}
	return p
}

func textWithKeyword(analyzer string) types.Property {
	p := types.NewTextProperty()
	if analyzer != "" {
		p.Analyzer = &analyzer
	}
	p.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return p
}
