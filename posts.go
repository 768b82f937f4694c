package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hhhapz/stackdown/blog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func loadPosts(path string) ([]blog.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "posts.csv not found: %s", path)
	}
	defer f.Close()

	logrus.Infof("Loading post metadata from %s...", path)
	posts, err := blog.LoadPosts(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}
	logrus.Infof("Loaded metadata for %d posts", len(posts))
	return posts, nil
}

// glob lists the files in dir matching pattern, sorted.
func glob(dir, pattern string) ([]string, error) {
	files, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "could not list %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// stem is the post id a file is named after: its base name without the
// final extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "%s not found: %s", what, path)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory: %s", what, path)
	}
	return nil
}
