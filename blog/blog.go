// Package blog reads export metadata and aggregates converted posts into
// JSONL records and quarterly archives.
package blog

import (
	"fmt"
	"strings"
	"time"
)

// Post is one row of the export's posts.csv. Empty fields are absent.
type Post struct {
	ID        string
	Date      string
	Title     string
	Subtitle  string
	Published string
	Type      string
	Audience  string
}

// Index maps post ids to their metadata.
type Index map[string]Post

// NewIndex indexes posts by id. A repeated id keeps the last row.
func NewIndex(posts []Post) Index {
	idx := make(Index, len(posts))
	for _, p := range posts {
		idx[p.ID] = p
	}
	return idx
}

// Lookup returns the title and subtitle for id, both empty when the post is
// unknown.
func (idx Index) Lookup(id string) (title, subtitle string, ok bool) {
	p, ok := idx[id]
	return p.Title, p.Subtitle, ok
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseDate parses an ISO 8601 post date such as 2025-10-31T18:07:24.508Z.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid post date %q", s)
}

// Quarter returns the YYYY-Qn bucket of an ISO 8601 date.
func Quarter(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1), nil
}

func (p Post) Quarter() (string, error) {
	return Quarter(p.Date)
}
