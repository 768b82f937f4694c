package dom

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML document or fragment and returns its <body> element.
// Fragments end up inside <body>, so the returned root's children are the
// top-level elements of the post. Parsing follows the HTML5 tree builder, so
// misnested markup is rearranged: a <div> inside a <p> closes the paragraph
// and any text after the <div> becomes a direct child of <body>.
func Parse(r io.Reader) (*Element, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return &Element{Kind: atom.Body, Tag: "body"}, nil
	}
	return FromHTML(body.Get(0)), nil
}

// FromHTML converts an element node and its subtree. Comments, doctypes and
// other non-content nodes are dropped.
func FromHTML(n *html.Node) *Element {
	el := &Element{
		Kind:  n.DataAtom,
		Tag:   n.Data,
		Attrs: n.Attr,
	}
	if el.Kind == 0 {
		el.Kind = atom.Lookup([]byte(n.Data))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			el.Children = append(el.Children, Text(c.Data))
		case html.ElementNode:
			el.Children = append(el.Children, FromHTML(c))
		}
	}
	return el
}
