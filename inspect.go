package main

import (
	"fmt"
	"os"

	"github.com/hhhapz/stackdown/dom"
	"github.com/hhhapz/stackdown/markdown"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	inspectMarkdown bool
	inspectColor    bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.html>",
	Short: "Print the parsed node tree of one post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "could not open post")
		}
		defer f.Close()

		root, err := dom.Parse(f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if inspectMarkdown {
			_, err = fmt.Fprintln(out, markdown.New(cfg.Markers).Convert(root, "", ""))
			return err
		}

		pp.ColoringEnabled = inspectColor
		_, err = pp.Fprintln(out, root)
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectMarkdown, "markdown", false, "print the converted Markdown instead of the tree")
	inspectCmd.Flags().BoolVar(&inspectColor, "color", false, "colourise the tree")
}
