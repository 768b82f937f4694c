package blog

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var separator = strings.Repeat("=", 80)

// QuarterPosts groups the posts published in one calendar quarter.
type QuarterPosts struct {
	Name  string
	Posts []Post
}

// GroupByQuarter buckets posts by the quarter of their date. Quarters are
// returned in ascending order and posts within each quarter ascending by
// date. Posts whose date cannot be parsed are left out and reported in the
// returned error; the grouping of the rest is still returned.
func GroupByQuarter(posts []Post) ([]QuarterPosts, error) {
	var errs *multierror.Error
	groups := map[string][]Post{}
	for _, p := range posts {
		q, err := p.Quarter()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("post %s: %w", p.ID, err))
			continue
		}
		groups[q] = append(groups[q], p)
	}

	quarters := make([]QuarterPosts, 0, len(groups))
	for name, ps := range groups {
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Date < ps[j].Date
		})
		quarters = append(quarters, QuarterPosts{Name: name, Posts: ps})
	}
	sort.Slice(quarters, func(i, j int) bool {
		return quarters[i].Name < quarters[j].Name
	})

	return quarters, errs.ErrorOrNil()
}

// WriteArchive writes the combined Markdown of one quarter: a heading, a
// post count, then every post preceded by a separator line.
func WriteArchive(w io.Writer, quarter string, contents []string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Posts from %s\n\n", quarter)
	fmt.Fprintf(bw, "This file contains %d posts from %s.\n\n", len(contents), quarter)
	bw.WriteString(separator + "\n\n")

	for i, content := range contents {
		if i > 0 {
			bw.WriteString("\n\n" + separator + "\n\n")
		}
		bw.WriteString(content)
	}
	return bw.Flush()
}
