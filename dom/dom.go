// Package dom holds the read-only node tree the Markdown converter walks.
//
// A Node is either Text or *Element. Element kinds are atom.Atom values so
// callers can switch over a closed set of tags; unknown tags keep their name
// in Tag and have a zero Kind.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Node interface {
	node()
}

// Text is a literal run of character data.
type Text string

type Element struct {
	Kind     atom.Atom
	Tag      string
	Attrs    []html.Attribute
	Children []Node
}

func (Text) node()     {}
func (*Element) node() {}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute, or def when it is absent.
func (e *Element) AttrOr(key, def string) string {
	if v, ok := e.Attr(key); ok {
		return v
	}
	return def
}

func (e *Element) HasClass(class string) bool {
	if class == "" {
		return false
	}
	for _, c := range strings.Fields(e.AttrOr("class", "")) {
		if c == class {
			return true
		}
	}
	return false
}

// Elements returns the element children of e, skipping text.
func (e *Element) Elements() []*Element {
	var els []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			els = append(els, el)
		}
	}
	return els
}

// Text returns the concatenated text of every descendant text node.
func (e *Element) Text() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, c := range e.Children {
		switch n := c.(type) {
		case Text:
			b.WriteString(string(n))
		case *Element:
			n.writeText(b)
		}
	}
}

// Find returns the first descendant of e, in document order, with the given
// kind and class. An empty class matches any element of that kind. e itself
// is never matched.
func (e *Element) Find(kind atom.Atom, class string) *Element {
	for _, c := range e.Children {
		el, ok := c.(*Element)
		if !ok {
			continue
		}
		if el.matches(kind, class) {
			return el
		}
		if found := el.Find(kind, class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant matching kind and class in document order.
func (e *Element) FindAll(kind atom.Atom, class string) []*Element {
	var found []*Element
	for _, el := range e.Elements() {
		if el.matches(kind, class) {
			found = append(found, el)
		}
		found = append(found, el.FindAll(kind, class)...)
	}
	return found
}

func (e *Element) matches(kind atom.Atom, class string) bool {
	if e.Kind != kind {
		return false
	}
	return class == "" || e.HasClass(class)
}
