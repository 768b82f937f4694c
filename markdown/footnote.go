package markdown

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hhhapz/stackdown/dom"
	"golang.org/x/net/html/atom"
)

// numberRef matches the back-reference href on a footnote definition.
var numberRef = regexp.MustCompile(`footnote-anchor-(\d+)`)

// footnotes is the per-document registry of footnote definitions, keyed by
// the numeral found in the markup. Later definitions replace earlier ones.
type footnotes map[string]string

// blocks renders each definition in ascending numeral order. Numerals carry
// no leading zeros, so shorter ones are smaller.
func (f footnotes) blocks() []string {
	nums := make([]string, 0, len(f))
	for n := range f {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool {
		if len(nums[i]) != len(nums[j]) {
			return len(nums[i]) < len(nums[j])
		}
		return nums[i] < nums[j]
	})

	blocks := make([]string, len(nums))
	for i, n := range nums {
		blocks[i] = Footnote{Number: n, Text: f[n]}.Markdown()
	}
	return blocks
}

// footnote records the definition held by el. It never produces output;
// definitions without a numeral or content are ignored.
func (c *Converter) footnote(el *dom.Element, notes footnotes) {
	num := el.Find(atom.A, c.m.FootnoteNumber)
	if num == nil {
		return
	}
	n, ok := numeral(numberRef, num.AttrOr("href", ""))
	if !ok {
		return
	}

	content := el.Find(atom.Div, c.m.FootnoteContent)
	if content == nil {
		return
	}
	notes[n] = strings.TrimSpace(c.inline(content))
}
