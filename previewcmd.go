package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hhhapz/stackdown/preview"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.md>...",
	Short: "Render converted Markdown files to HTML pages for review",
	Long: `preview renders each Markdown file next to itself as an .html page.
Arguments may be glob patterns, e.g. 'posts/*.md'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		for _, arg := range args {
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return errors.Wrapf(err, "bad pattern %q", arg)
			}
			if len(matches) == 0 {
				matches = []string{arg}
			}
			files = append(files, matches...)
		}

		r := preview.New()
		var errs *multierror.Error
		for _, file := range files {
			out, err := previewFile(r, file)
			if err != nil {
				logrus.Error(err)
				errs = multierror.Append(errs, err)
				continue
			}
			logrus.Infof("Rendered: %s", out)
		}
		return errs.ErrorOrNil()
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func previewFile(r *preview.Renderer, path string) (string, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read %s", path)
	}

	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	f, err := os.Create(out)
	if err != nil {
		return "", errors.Wrapf(err, "could not create %s", out)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := r.WritePage(w, pageTitle(md, stem(path)), md); err != nil {
		return "", errors.Wrapf(err, "could not render %s", path)
	}
	if err := w.Flush(); err != nil {
		return "", errors.Wrapf(err, "could not write %s", out)
	}
	return out, f.Close()
}

// pageTitle is the text of a leading "# " heading, or fallback.
func pageTitle(md []byte, fallback string) string {
	line, _, _ := strings.Cut(string(md), "\n")
	if title := strings.TrimPrefix(line, "# "); title != line && title != "" {
		return strings.TrimSpace(title)
	}
	return fallback
}
