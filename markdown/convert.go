package markdown

import (
	"strings"

	"github.com/hhhapz/stackdown/dom"
	"golang.org/x/net/html/atom"
)

// Convert renders root as a Markdown document. A non-empty title adds a
// heading, an italic subtitle (when set) and a rule before the body.
// Text directly under root is ignored.
func (c *Converter) Convert(root *dom.Element, title, subtitle string) string {
	var blocks []string
	if title != "" {
		blocks = append(blocks, Heading{1, title}.Markdown())
		if subtitle != "" {
			blocks = append(blocks, Italic(subtitle).Markdown())
		}
		blocks = append(blocks, rule)
	}

	notes := footnotes{}
	if root != nil {
		for _, el := range root.Elements() {
			if md := c.element(el, notes); md != "" {
				blocks = append(blocks, md)
			}
		}
	}

	if len(notes) > 0 {
		blocks = append(blocks, rule)
		blocks = append(blocks, notes.blocks()...)
	}

	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// element renders a single block-level element. Kinds without a rule render
// to the empty string.
func (c *Converter) element(el *dom.Element, notes footnotes) string {
	switch el.Kind {
	case atom.H1:
		return Heading{1, c.inline(el)}.Markdown()
	case atom.H2:
		return Heading{2, c.inline(el)}.Markdown()
	case atom.H3:
		return Heading{3, c.inline(el)}.Markdown()
	case atom.P:
		return c.inline(el)
	case atom.Blockquote:
		return c.quote(el)
	case atom.Div:
		return c.division(el, notes)
	default:
		return ""
	}
}

// quote keeps only the paragraphs directly inside a blockquote.
func (c *Converter) quote(el *dom.Element) string {
	var q Quote
	for _, child := range el.Elements() {
		if child.Kind == atom.P {
			q = append(q, c.inline(child))
		}
	}
	return q.Markdown()
}

func (c *Converter) division(el *dom.Element, notes footnotes) string {
	switch {
	case el.HasClass(c.m.ImageContainer):
		return c.image(el)
	case el.HasClass(c.m.Footnote):
		c.footnote(el, notes)
		return ""
	}

	var parts []string
	for _, child := range el.Elements() {
		if md := c.element(child, notes); md != "" {
			parts = append(parts, md)
		}
	}
	return strings.Join(parts, "\n\n")
}
