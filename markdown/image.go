package markdown

import (
	"strings"

	"github.com/hhhapz/stackdown/dom"
	"golang.org/x/net/html/atom"
)

func (c *Converter) image(el *dom.Element) string {
	img := el.Find(atom.Img, "")
	if img == nil {
		return ""
	}

	im := Image{
		Alt:    img.AttrOr("alt", ""),
		Source: img.AttrOr("src", ""),
	}
	if link := el.Find(atom.A, c.m.ImageLink); link != nil {
		im.Source = c.resolveSource(im.Source, link.AttrOr("href", ""))
	}

	if caption := el.Find(atom.Figcaption, ""); caption != nil {
		im.captioned = true
		if a := caption.Find(atom.A, ""); a != nil {
			im.Caption = a.Text()
			im.CaptionURL = a.AttrOr("href", "")
			im.linked = true
		} else {
			im.Caption = c.inline(caption)
		}
	}

	return im.Markdown()
}

// resolveSource picks between an image's own src and the href of the link
// wrapping it. The CDN URL always wins; an interim storage src is replaced
// by any link target.
func (c *Converter) resolveSource(src, href string) string {
	switch {
	case strings.Contains(href, c.m.CDNHost):
		return href
	case strings.Contains(src, c.m.InterimHost) && href != "":
		return href
	}
	return src
}
