package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hhhapz/stackdown/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromBytes(t *testing.T) {
	input := []byte(`
root: /data/blog
output: md
workers: 3
progress: true
webhook: https://discord.com/api/webhooks/1/abc
markers:
  cdn_host: cdn.example.com
`)

	config, err := configFromBytes(input)
	assert.NoError(t, err)

	markers := markdown.DefaultMarkers
	markers.CDNHost = "cdn.example.com"

	expected := configuration{
		Root:     "/data/blog",
		Output:   "md",
		JSONL:    "posts.jsonl",
		Batched:  "posts-batched",
		Workers:  3,
		Progress: true,
		Webhook:  "https://discord.com/api/webhooks/1/abc",
		Markers:  markers,
	}

	assert.Equal(t, expected, config)
}

func TestConfigFromBytesDefaults(t *testing.T) {
	config, err := configFromBytes([]byte("workers: 0\noutput: \"\"\n"))
	assert.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
	assert.Equal(t, runtime.NumCPU(), config.Workers)
}

func TestConfigFromBytesInvalid(t *testing.T) {
	_, err := configFromBytes([]byte("workers: [1"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()

	c, err := config(filepath.Join(dir, "missing.yaml"), false)
	assert.NoError(t, err)
	assert.Equal(t, defaultConfig(), c)

	_, err = config(filepath.Join(dir, "missing.yaml"), true)
	assert.Error(t, err)

	path := filepath.Join(dir, "stackdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jsonl: out/all.jsonl\n"), 0o644))
	c, err = config(path, true)
	assert.NoError(t, err)
	assert.Equal(t, "out/all.jsonl", c.JSONL)
}

func TestConfigOverride(t *testing.T) {
	base := defaultConfig()
	base.Webhook = "https://file.example.com"

	flags := configuration{Root: "/flag", Workers: 0, Webhook: "https://flag.example.com"}
	changed := map[string]bool{"root": true, "workers": true}

	got := base.override(func(name string) bool { return changed[name] }, flags)
	assert.Equal(t, "/flag", got.Root)
	assert.Equal(t, runtime.NumCPU(), got.Workers, "invalid worker counts fall back to the default")
	assert.Equal(t, "https://file.example.com", got.Webhook)
}

func TestPaths(t *testing.T) {
	c := defaultConfig()
	c.Root = "/srv"
	c.Batched = "/tmp/batched"

	p := c.paths("export-2025-01-20")
	assert.Equal(t, exportPaths{
		Posts:   "/srv/export-2025-01-20/posts",
		CSV:     "/srv/export-2025-01-20/posts.csv",
		Output:  "/srv/posts",
		JSONL:   "/srv/posts.jsonl",
		Batched: "/tmp/batched",
	}, p)
}
