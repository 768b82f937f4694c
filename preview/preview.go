// Package preview renders converted posts to HTML so the Markdown output
// can be reviewed in a browser.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer is stateless and safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GFM and footnote support. Raw HTML in the
// input is not passed through.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts Markdown to an HTML fragment.
func (r *Renderer) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}

const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// WritePage renders markdown as a standalone HTML page titled title.
func (r *Renderer) WritePage(w io.Writer, title string, markdown []byte) error {
	body, err := r.Render(markdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, page, html.EscapeString(title), body)
	return err
}
