package markdown

import "strings"

const rule = "---"

type Heading struct {
	Level int
	Text  string
}

type Link struct {
	Text     string
	Location string
}

// Image is an image line with an optional caption line beneath it. A
// captioned image always gets the line, even when Caption is empty.
// CaptionURL is only used when the caption itself was a link.
type Image struct {
	Alt        string
	Source     string
	Caption    string
	CaptionURL string
	captioned  bool
	linked     bool
}

type Footnote struct {
	Number string
	Text   string
}

type (
	Quote  []string
	Code   string
	Italic string
	Bold   string
	// Ref is a footnote reference by its numeral.
	Ref string
)

func (h Heading) Markdown() string {
	return strings.Repeat("#", h.Level) + " " + h.Text
}

// Markdown renders the link, or just its text when there is no location or
// no text to link.
func (l Link) Markdown() string {
	if l.Location == "" || l.Text == "" {
		return l.Text
	}
	return "[" + l.Text + "](" + l.Location + ")"
}

func (i Image) Markdown() string {
	md := "![" + i.Alt + "](" + i.Source + ")"
	switch {
	case i.linked:
		md += "\n*[" + i.Caption + "](" + i.CaptionURL + ")*"
	case i.captioned:
		md += "\n" + Italic(i.Caption).Markdown()
	}
	return md
}

func (f Footnote) Markdown() string {
	return Ref(f.Number).Markdown() + ": " + f.Text
}

func (q Quote) Markdown() string {
	lines := make([]string, len(q))
	for i, line := range q {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

func (c Code) Markdown() string {
	return "`" + string(c) + "`"
}

func (i Italic) Markdown() string {
	return "*" + string(i) + "*"
}

func (b Bold) Markdown() string {
	return "**" + string(b) + "**"
}

func (r Ref) Markdown() string {
	return "[^" + string(r) + "]"
}
