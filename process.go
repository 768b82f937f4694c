package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process <export_dir>",
	Short: "Run convert, jsonl and batch in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.Context(), cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}

type step struct {
	description string
	run         func(ctx context.Context) (fmt.Stringer, error)
}

// runProcess stops at the first step that fails. With a webhook configured
// the outcome is posted to Discord; a failed notification is only logged.
func runProcess(ctx context.Context, c configuration, exportDir string) error {
	summary := runSummary{export: exportDir}
	steps := []step{
		{"Converting HTML to Markdown", func(ctx context.Context) (fmt.Stringer, error) {
			s, err := runConvert(ctx, c, exportDir)
			summary.convert = s
			return s, err
		}},
		{"Converting to JSONL", func(ctx context.Context) (fmt.Stringer, error) {
			s, err := runJSONL(ctx, c, exportDir)
			summary.jsonl = s
			return s, err
		}},
		{"Batching by quarter", func(ctx context.Context) (fmt.Stringer, error) {
			s, err := runBatch(ctx, c, exportDir)
			summary.batch = s
			return s, err
		}},
	}

	rule := strings.Repeat("=", 50)
	logrus.Info(rule)
	logrus.Infof("Processing Substack export: %s", exportDir)
	logrus.Info(rule)

	for i, s := range steps {
		logrus.Infof("Step %d/%d: %s", i+1, len(steps), s.description)
		result, err := s.run(ctx)
		if err != nil {
			err = errors.Wrapf(err, "step %d/%d (%s) failed", i+1, len(steps), s.description)
			send(ctx, c.Webhook, failEmbed("Processing "+exportDir+" failed", err.Error()))
			return err
		}
		logrus.Info(result)
	}

	logrus.Info(rule)
	logrus.Info("All processing complete!")
	logrus.Info(rule)

	send(ctx, c.Webhook, summaryEmbed(summary))
	return nil
}

func send(ctx context.Context, url string, embed discord.Embed) {
	if url == "" {
		return
	}
	if err := notify(ctx, url, embed); err != nil {
		logrus.Warnf("Could not notify Discord: %v", err)
	}
}
