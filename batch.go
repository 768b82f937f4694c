package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/hhhapz/stackdown/blog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <export_dir>",
	Short: "Combine converted posts into one Markdown file per quarter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := runBatch(cmd.Context(), cfg, args[0])
		if err != nil {
			return err
		}
		logrus.Info(stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

type archiveFile struct {
	Name  string
	Posts int
	Size  int64
}

type batchStats struct {
	Posts   int
	Missing int
	Failed  int
	Output  string
	Files   []archiveFile
}

func (s batchStats) String() string {
	return fmt.Sprintf("Batching complete: %d posts in %d quarterly files, %d missing, %d failed, written to %s",
		s.Posts, len(s.Files), s.Missing, s.Failed, s.Output)
}

func runBatch(ctx context.Context, c configuration, exportDir string) (batchStats, error) {
	p := c.paths(exportDir)
	stats := batchStats{Output: p.Batched}

	posts, err := loadPosts(p.CSV)
	if err != nil {
		return stats, err
	}
	if err := os.MkdirAll(p.Batched, 0o755); err != nil {
		return stats, errors.Wrap(err, "could not create batch directory")
	}

	quarters, err := blog.GroupByQuarter(posts)
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				logrus.Warnf("Skipping post: %v", e)
				stats.Failed++
			}
		}
	}
	logrus.Infof("Found posts in %d quarters", len(quarters))

	for _, q := range quarters {
		if err := ctx.Err(); err != nil {
			return stats, errors.Wrap(err, "batching interrupted")
		}
		logrus.Infof("Processing %s: %d posts", q.Name, len(q.Posts))

		var contents []string
		for _, post := range q.Posts {
			b, err := os.ReadFile(filepath.Join(p.Output, post.ID+".md"))
			switch {
			case os.IsNotExist(err):
				logrus.WithField("post", post.ID).Warn("Markdown file not found")
				stats.Missing++
				continue
			case err != nil:
				logrus.WithField("post", post.ID).Errorf("Error reading: %v", err)
				stats.Failed++
				continue
			}
			contents = append(contents, string(b))
		}

		path := filepath.Join(p.Batched, q.Name+".md")
		size, err := writeArchive(path, q.Name, contents)
		if err != nil {
			logrus.Errorf("Could not write %s: %v", filepath.Base(path), err)
			stats.Failed += len(contents)
			continue
		}
		logrus.Infof("Created: %s (%s)", filepath.Base(path), humanize.Bytes(uint64(size)))

		stats.Posts += len(contents)
		stats.Files = append(stats.Files, archiveFile{Name: filepath.Base(path), Posts: len(contents), Size: size})
	}

	return stats, nil
}

// writeArchive writes one quarterly file and returns its size.
func writeArchive(path, quarter string, contents []string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := blog.WriteArchive(f, quarter, contents); err != nil {
		return 0, err
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), f.Close()
}
