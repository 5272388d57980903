package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/news-scraper/internal/aggregator"
	"github.com/DjordjeVuckovic/news-scraper/internal/domain"
)

// Output is the JSON document printed by the scraper.
type Output struct {
	Columns []string          `json:"columns"`
	Rows    *domain.Table     `json:"rows"`
	Sources aggregator.Report `json:"sources"`
}

func NewOutput(table *domain.Table, rep aggregator.Report) Output {
	if rep == nil {
		rep = aggregator.Report{}
	}
	return Output{
		Columns: domain.Columns,
		Rows:    table,
		Sources: rep,
	}
}

func WriteJSON(w io.Writer, table *domain.Table, rep aggregator.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewOutput(table, rep)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func WriteJSONFile(path string, table *domain.Table, rep aggregator.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	return WriteJSON(f, table, rep)
}
