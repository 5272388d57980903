package domain

import (
	"encoding/json"
	"time"
)

// Columns lists the table columns in output order.
var Columns = []string{"title", "link", "publication_time", "text", "source"}

// Table is an ordered collection of News rows. Insertion order is kept:
// source iteration order first, then the order of each feed.
type Table struct {
	rows []News
}

func NewTable(rows ...News) *Table {
	t := &Table{rows: make([]News, 0, len(rows))}
	t.Append(rows...)
	return t
}

func (t *Table) Append(rows ...News) {
	t.rows = append(t.rows, rows...)
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table rows.
func (t *Table) Rows() []News {
	out := make([]News, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table) BySource(source string) []News {
	var out []News
	for _, r := range t.rows {
		if r.Source == source {
			out = append(out, r)
		}
	}
	return out
}

// Page returns at most size rows starting at offset.
func (t *Table) Page(offset, size int) []News {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(t.rows) || size <= 0 {
		return []News{}
	}
	end := offset + size
	if end > len(t.rows) {
		end = len(t.rows)
	}
	out := make([]News, end-offset)
	copy(out, t.rows[offset:end])
	return out
}

// Record returns row i as strings in Columns order.
func (t *Table) Record(i int) []string {
	r := t.rows[i]
	return []string{r.Title, r.Link, r.PublishedAt.Format(time.RFC3339), r.Text, r.Source}
}

func (t *Table) MarshalJSON() ([]byte, error) {
	if t.rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.rows)
}
