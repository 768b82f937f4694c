package markdown

import (
	"regexp"
	"strings"

	"github.com/hhhapz/stackdown/dom"
	"golang.org/x/net/html/atom"
)

// anchorRef matches the href of an in-text footnote anchor.
var anchorRef = regexp.MustCompile(`#footnote-(\d+)`)

// inline renders the children of el as a single run of Markdown.
func (c *Converter) inline(el *dom.Element) string {
	var b strings.Builder
	c.writeInline(&b, el)
	return b.String()
}

func (c *Converter) writeInline(b *strings.Builder, el *dom.Element) {
	for _, child := range el.Children {
		switch n := child.(type) {
		case dom.Text:
			b.WriteString(string(n))
		case *dom.Element:
			c.writeInlineElement(b, n)
		}
	}
}

func (c *Converter) writeInlineElement(b *strings.Builder, el *dom.Element) {
	switch el.Kind {
	case atom.A:
		if el.HasClass(c.m.FootnoteAnchor) {
			// Anchors without a recognisable target are dropped.
			if n, ok := numeral(anchorRef, el.AttrOr("href", "")); ok {
				b.WriteString(Ref(n).Markdown())
			}
			return
		}
		b.WriteString(Link{Text: el.Text(), Location: el.AttrOr("href", "")}.Markdown())
	case atom.Em:
		b.WriteString(Italic(c.inline(el)).Markdown())
	case atom.Strong:
		b.WriteString(Bold(c.inline(el)).Markdown())
	case atom.Code:
		b.WriteString(Code(el.Text()).Markdown())
	default:
		c.writeInline(b, el)
	}
}

// numeral extracts the digits captured by re from s, without leading zeros.
// The digits are kept as text so any length is accepted.
func numeral(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	if n := strings.TrimLeft(m[1], "0"); n != "" {
		return n, true
	}
	return "0", true
}
