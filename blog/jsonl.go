package blog

import (
	"fmt"
	"io"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// Record is one line of posts.jsonl.
type Record struct {
	ID       string `json:"post_id"`
	Date     string `json:"post_date"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

// Markdown content keeps its <, > and & as written.
var json = jsoniter.Config{EscapeHTML: false}.Froze()

func NewRecord(p Post, content string) Record {
	return Record{
		ID:       p.ID,
		Date:     p.Date,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Content:  content,
	}
}

// WriteJSONL writes records newest first, one JSON object per line. records
// is not modified.
func WriteJSONL(w io.Writer, records []Record) error {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	enc := json.NewEncoder(w)
	for _, r := range sorted {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("could not encode %s: %w", r.ID, err)
		}
	}
	return nil
}
