package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/hhhapz/stackdown/blog"
	"github.com/hhhapz/stackdown/markdown"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var convertCmd = &cobra.Command{
	Use:   "convert <export_dir>",
	Short: "Convert the export's HTML posts to Markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := runConvert(cmd.Context(), cfg, args[0])
		if err != nil {
			return err
		}
		logrus.Info(stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

type convertStats struct {
	Converted int
	Failed    int
	Output    string
	// Errors holds one entry per post that could not be converted.
	Errors *multierror.Error
}

func (s convertStats) String() string {
	return fmt.Sprintf("Conversion complete: %d converted, %d failed, Markdown files in %s",
		s.Converted, s.Failed, s.Output)
}

// runConvert converts every posts/*.html file of exportDir. Posts that fail
// are logged and counted; only setup problems and cancellation return an
// error.
func runConvert(ctx context.Context, c configuration, exportDir string) (convertStats, error) {
	p := c.paths(exportDir)
	stats := convertStats{Output: p.Output}

	if err := requireDir(p.Posts, "posts directory"); err != nil {
		return stats, err
	}
	posts, err := loadPosts(p.CSV)
	if err != nil {
		return stats, err
	}
	if err := os.MkdirAll(p.Output, 0o755); err != nil {
		return stats, errors.Wrap(err, "could not create output directory")
	}

	files, err := glob(p.Posts, "*.html")
	if err != nil {
		return stats, err
	}
	logrus.Infof("Found %d HTML files to convert", len(files))

	conv := markdown.New(c.Markers)
	idx := blog.NewIndex(posts)
	pr := newProgress(c.Progress, "converting", len(files))

	var (
		mu sync.Mutex
		n  int
	)
	g := new(errgroup.Group)
	g.SetLimit(c.Workers)
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		file := file
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			err := convertFile(conv, idx, file, p.Output)

			mu.Lock()
			defer mu.Unlock()
			n++
			if err != nil {
				stats.Failed++
				stats.Errors = multierror.Append(stats.Errors, err)
			} else {
				stats.Converted++
			}
			pr.done(n, filepath.Base(file), err)
			return nil
		})
	}
	g.Wait()
	pr.wait()

	if err := ctx.Err(); err != nil {
		return stats, errors.Wrap(err, "conversion interrupted")
	}
	return stats, nil
}

// convertFile converts one HTML post into <outDir>/<id>.md. Posts without
// metadata are converted without a title.
func convertFile(conv *markdown.Converter, idx blog.Index, path, outDir string) error {
	id := stem(path)
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", filepath.Base(path))
	}
	defer f.Close()

	title, subtitle, ok := idx.Lookup(id)
	if !ok {
		logrus.WithField("post", id).Debug("no metadata, converting without title")
	}

	md, err := conv.ConvertHTML(f, title, subtitle)
	if err != nil {
		return errors.Wrapf(err, "could not convert %s", id)
	}

	out := filepath.Join(outDir, id+".md")
	return errors.Wrapf(os.WriteFile(out, []byte(md), 0o644), "could not write %s", out)
}
