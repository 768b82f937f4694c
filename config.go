package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hhhapz/stackdown/markdown"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "stackdown.yaml"

type configuration struct {
	Root     string           `yaml:"root"`
	Output   string           `yaml:"output"`
	JSONL    string           `yaml:"jsonl"`
	Batched  string           `yaml:"batched"`
	Workers  int              `yaml:"workers"`
	Progress bool             `yaml:"progress"`
	Webhook  string           `yaml:"webhook"`
	Markers  markdown.Markers `yaml:"markers"`
}

func defaultConfig() configuration {
	return configuration{
		Root:    ".",
		Output:  "posts",
		JSONL:   "posts.jsonl",
		Batched: "posts-batched",
		Workers: runtime.NumCPU(),
		Markers: markdown.DefaultMarkers,
	}
}

// config reads the configuration file at path. A missing file is only an
// error when the path was given explicitly.
func config(path string, explicit bool) (configuration, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return configuration{}, errors.Wrap(err, "could not open config")
	}
	return configFromBytes(fileBytes)
}

func configFromBytes(b []byte) (configuration, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return configuration{}, errors.Wrap(err, "could not parse config")
	}
	return cfg.normalize(), nil
}

func (c configuration) normalize() configuration {
	d := defaultConfig()
	if c.Root == "" {
		c.Root = d.Root
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.JSONL == "" {
		c.JSONL = d.JSONL
	}
	if c.Batched == "" {
		c.Batched = d.Batched
	}
	if c.Workers < 1 {
		c.Workers = d.Workers
	}
	return c
}

// override copies the fields of f whose flag was set on the command line.
func (c configuration) override(changed func(name string) bool, f configuration) configuration {
	if changed("root") {
		c.Root = f.Root
	}
	if changed("output") {
		c.Output = f.Output
	}
	if changed("jsonl") {
		c.JSONL = f.JSONL
	}
	if changed("batched") {
		c.Batched = f.Batched
	}
	if changed("workers") {
		c.Workers = f.Workers
	}
	if changed("progress") {
		c.Progress = f.Progress
	}
	if changed("webhook") {
		c.Webhook = f.Webhook
	}
	return c.normalize()
}

// exportPaths are the files one run reads and writes.
type exportPaths struct {
	Posts   string
	CSV     string
	Output  string
	JSONL   string
	Batched string
}

func (c configuration) paths(exportDir string) exportPaths {
	export := resolve(c.Root, exportDir)
	return exportPaths{
		Posts:   filepath.Join(export, "posts"),
		CSV:     filepath.Join(export, "posts.csv"),
		Output:  resolve(c.Root, c.Output),
		JSONL:   resolve(c.Root, c.JSONL),
		Batched: resolve(c.Root, c.Batched),
	}
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
