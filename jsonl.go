package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hhhapz/stackdown/blog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var jsonlCmd = &cobra.Command{
	Use:   "jsonl <export_dir>",
	Short: "Combine converted posts and their metadata into a JSONL file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := runJSONL(cmd.Context(), cfg, args[0])
		if err != nil {
			return err
		}
		logrus.Info(stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jsonlCmd)
}

type jsonlStats struct {
	Processed int
	Missing   int
	Failed    int
	Output    string
}

func (s jsonlStats) String() string {
	return fmt.Sprintf("JSONL complete: %d posts, %d without metadata, %d unreadable, written to %s",
		s.Processed, s.Missing, s.Failed, s.Output)
}

func runJSONL(ctx context.Context, c configuration, exportDir string) (jsonlStats, error) {
	p := c.paths(exportDir)
	stats := jsonlStats{Output: p.JSONL}

	posts, err := loadPosts(p.CSV)
	if err != nil {
		return stats, err
	}
	idx := blog.NewIndex(posts)

	files, err := glob(p.Output, "*.md")
	if err != nil {
		return stats, err
	}
	logrus.Infof("Found %d markdown files", len(files))

	var records []blog.Record
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return stats, errors.Wrap(err, "jsonl interrupted")
		}

		id := stem(file)
		post, ok := idx[id]
		if !ok {
			logrus.WithField("post", id).Warn("No metadata found")
			stats.Missing++
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			logrus.Errorf("Error reading %s: %v", filepath.Base(file), err)
			stats.Failed++
			continue
		}
		records = append(records, blog.NewRecord(post, string(content)))
	}

	logrus.Infof("Writing JSONL file to %s...", p.JSONL)
	if err := writeJSONL(p.JSONL, records); err != nil {
		return stats, err
	}
	stats.Processed = len(records)
	return stats, nil
}

func writeJSONL(path string, records []blog.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "could not create JSONL directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create JSONL file")
	}

	w := bufio.NewWriter(f)
	if err := blog.WriteJSONL(w, records); err != nil {
		f.Close()
		return errors.Wrap(err, "could not write JSONL file")
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "could not write JSONL file")
	}
	return errors.Wrap(f.Close(), "could not close JSONL file")
}
