package main

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 30)

	cases := []struct {
		name  string
		lines []string
		limit int
		want  string
		more  bool
	}{
		{
			name: "empty",
			want: "*Nothing written*",
		},
		{
			name:  "fits",
			lines: []string{"a", "b"},
			limit: 100,
			want:  "a\nb",
		},
		{
			name:  "omits the rest",
			lines: []string{long, long, long},
			limit: 110,
			want:  long + "\n" + long + "\n*1 more omitted*",
			more:  true,
		},
		{
			name:  "omits everything",
			lines: []string{long},
			limit: 50,
			want:  "*1 more omitted*",
			more:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, more := truncate(c.lines, c.limit)
			if got != c.want {
				t.Errorf("INVALID TEXT:\nGOT:%q\nEXPECTED:%q", got, c.want)
			}
			if more != c.more {
				t.Errorf("INVALID MORE:\nGOT:%t\nEXPECTED:%t", more, c.more)
			}
		})
	}
}

func TestPageTitle(t *testing.T) {
	cases := []struct {
		name string
		md   string
		want string
	}{
		{"heading", "# A Strange Delight\n\n*sub*", "A Strange Delight"},
		{"no heading", "Just text", "fallback"},
		{"second level", "## Section", "fallback"},
		{"empty heading", "# \n\nbody", "fallback"},
		{"empty", "", "fallback"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := pageTitle([]byte(c.md), "fallback"); got != c.want {
				t.Errorf("INVALID TITLE:\nGOT:%s\nEXPECTED:%s", got, c.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"posts/100667069.insight-industrial-complex.html": "100667069.insight-industrial-complex",
		"177675177.a-strange-delight.md":                  "177675177.a-strange-delight",
		"noext":                                           "noext",
	}
	for in, want := range cases {
		if got := stem(in); got != want {
			t.Errorf("stem(%q) = %q, want %q", in, got, want)
		}
	}
}
