// Package markdown converts exported Substack post markup into Markdown.
//
// Conversion walks the top-level elements of a post, rendering headings,
// paragraphs, blockquotes, captioned images and nested divisions in order.
// Footnote definitions are collected while walking and emitted once, sorted
// by numeral, after a trailing rule. Unrecognised elements are dropped.
package markdown

import (
	"fmt"
	"io"

	"github.com/hhhapz/stackdown/dom"
)

// Markers are the class names and URL substrings that identify the export's
// image and footnote markup.
type Markers struct {
	ImageContainer  string `yaml:"image_container"`
	ImageLink       string `yaml:"image_link"`
	Footnote        string `yaml:"footnote"`
	FootnoteAnchor  string `yaml:"footnote_anchor"`
	FootnoteNumber  string `yaml:"footnote_number"`
	FootnoteContent string `yaml:"footnote_content"`

	// CDNHost marks the durable, publicly served image host.
	CDNHost string `yaml:"cdn_host"`
	// InterimHost marks the transient storage host images are sometimes
	// linked to directly.
	InterimHost string `yaml:"interim_host"`
}

var DefaultMarkers = Markers{
	ImageContainer:  "captioned-image-container",
	ImageLink:       "image-link",
	Footnote:        "footnote",
	FootnoteAnchor:  "footnote-anchor",
	FootnoteNumber:  "footnote-number",
	FootnoteContent: "footnote-content",
	CDNHost:         "substackcdn.com",
	InterimHost:     "bucketeer",
}

func (m Markers) withDefaults() Markers {
	d := DefaultMarkers
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&m.ImageContainer, d.ImageContainer)
	fill(&m.ImageLink, d.ImageLink)
	fill(&m.Footnote, d.Footnote)
	fill(&m.FootnoteAnchor, d.FootnoteAnchor)
	fill(&m.FootnoteNumber, d.FootnoteNumber)
	fill(&m.FootnoteContent, d.FootnoteContent)
	fill(&m.CDNHost, d.CDNHost)
	fill(&m.InterimHost, d.InterimHost)
	return m
}

// Converter renders posts to Markdown. It holds no per-document state and
// may be shared between goroutines.
type Converter struct {
	m Markers
}

// New returns a Converter using m. Empty fields take their DefaultMarkers
// value.
func New(m Markers) *Converter {
	return &Converter{m: m.withDefaults()}
}

var std = New(DefaultMarkers)

// Convert renders root with the default markers.
func Convert(root *dom.Element, title, subtitle string) string {
	return std.Convert(root, title, subtitle)
}

// ConvertHTML parses r and renders it.
func (c *Converter) ConvertHTML(r io.Reader, title, subtitle string) (string, error) {
	root, err := dom.Parse(r)
	if err != nil {
		return "", fmt.Errorf("could not convert post: %w", err)
	}
	return c.Convert(root, title, subtitle), nil
}
