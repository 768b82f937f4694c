package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	quiet   bool

	// flagCfg receives flag values; only flags the user set override cfg.
	flagCfg configuration
	cfg     configuration
)

var rootCmd = &cobra.Command{
	Use:   "stackdown",
	Short: "Convert a Substack export into Markdown, JSONL and quarterly archives",
	Long: `stackdown turns the posts/*.html files of a Substack export into Markdown,
using posts.csv for titles and dates, then aggregates the Markdown into a JSONL
file and one combined file per calendar quarter.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", defaultConfigFile, "configuration file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	flags.StringVar(&flagCfg.Root, "root", ".", "directory holding the export and the generated files")
	flags.StringVar(&flagCfg.Output, "output", "posts", "directory for converted Markdown")
	flags.StringVar(&flagCfg.JSONL, "jsonl", "posts.jsonl", "JSONL output file")
	flags.StringVar(&flagCfg.Batched, "batched", "posts-batched", "directory for quarterly archives")
	flags.IntVarP(&flagCfg.Workers, "workers", "j", runtime.NumCPU(), "number of posts converted in parallel")
	flags.BoolVar(&flagCfg.Progress, "progress", false, "show a progress bar instead of a line per post")
	flags.StringVar(&flagCfg.Webhook, "webhook", "", "Discord webhook URL notified after process")
}

func setup(cmd *cobra.Command, _ []string) error {
	level := logrus.InfoLevel
	switch {
	case verbose:
		level = logrus.DebugLevel
	case quiet:
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	c, err := config(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	cfg = c.override(cmd.Flags().Changed, flagCfg)
	logrus.Debugf("configuration: %+v", cfg)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
