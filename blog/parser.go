package blog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LoadPosts reads posts.csv. Only the post_id column is required; rows
// without an id are skipped.
func LoadPosts(r io.Reader) ([]Post, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := cols["post_id"]; !ok {
		return nil, fmt.Errorf("could not find post_id column in %q", header)
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var posts []Post
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}

		post := Post{
			ID:        field(rec, "post_id"),
			Date:      field(rec, "post_date"),
			Title:     field(rec, "title"),
			Subtitle:  field(rec, "subtitle"),
			Published: field(rec, "is_published"),
			Type:      field(rec, "type"),
			Audience:  field(rec, "audience"),
		}
		if post.ID == "" {
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}
