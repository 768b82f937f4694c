package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	cdnURL     = "https://substackcdn.com/image/fetch/w_1456/photo.jpeg"
	interimURL = "https://bucketeer-e05bbc84.s3.amazonaws.com/public/images/photo.jpeg"
)

func TestImage(t *testing.T) {
	cases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "cdn link replaces interim source",
			html: `<a class="image-link" href="` + cdnURL + `"><img src="` + interimURL + `" alt=""></a>`,
			want: "![](" + cdnURL + ")",
		},
		{
			name: "cdn link replaces any source",
			html: `<a class="image-link" href="` + cdnURL + `"><img src="https://example.com/a.png" alt="Alt"></a>`,
			want: "![Alt](" + cdnURL + ")",
		},
		{
			name: "interim source takes non-cdn link",
			html: `<a class="image-link" href="https://example.com/full.png"><img src="` + interimURL + `"></a>`,
			want: "![](https://example.com/full.png)",
		},
		{
			name: "interim source kept without link target",
			html: `<a class="image-link"><img src="` + interimURL + `"></a>`,
			want: "![](" + interimURL + ")",
		},
		{
			name: "plain source kept",
			html: `<a class="image-link" href="https://other.com/b"><img src="https://example.com/a.png" alt="A cat"></a>`,
			want: "![A cat](https://example.com/a.png)",
		},
		{
			name: "link without image-link class is ignored",
			html: `<a href="` + cdnURL + `"><img src="https://example.com/a.png"></a>`,
			want: "![](https://example.com/a.png)",
		},
		{
			name: "plain caption",
			html: `<figure><img src="a.png" alt="a"><figcaption>Taken at <em>dawn</em></figcaption></figure>`,
			want: "![a](a.png)\n*Taken at *dawn**",
		},
		{
			name: "linked caption",
			html: `<figure><img src="a.png"><figcaption>Credit: <a href="https://src.com">Source</a></figcaption></figure>`,
			want: "![](a.png)\n*[Source](https://src.com)*",
		},
		{
			name: "empty caption",
			html: `<figure><img src="a.png"><figcaption></figcaption></figure>`,
			want: "![](a.png)\n**",
		},
		{
			name: "no caption",
			html: `<figure><img src="a.png"></figure>`,
			want: "![](a.png)",
		},
		{
			name: "no image",
			html: `<p>nothing to see</p>`,
			want: "",
		},
		{
			name: "image without attributes",
			html: `<img>`,
			want: "![]()",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			root := parse(t, `<div class="captioned-image-container">`+c.html+`</div>`)
			assert.Equal(t, c.want, Convert(root, "", ""))
		})
	}
}

func TestImageBeforeFootnoteClass(t *testing.T) {
	root := parse(t, `<div class="captioned-image-container footnote"><img src="a.png"></div>`)
	assert.Equal(t, "![](a.png)", Convert(root, "", ""))
}

func TestResolveSource(t *testing.T) {
	c := New(DefaultMarkers)

	assert.Equal(t, cdnURL, c.resolveSource(interimURL, cdnURL))
	assert.Equal(t, "https://x.com/y", c.resolveSource(interimURL, "https://x.com/y"))
	assert.Equal(t, interimURL, c.resolveSource(interimURL, ""))
	assert.Equal(t, "a.png", c.resolveSource("a.png", "https://x.com/y"))
	assert.Equal(t, "a.png", c.resolveSource("a.png", ""))
}
