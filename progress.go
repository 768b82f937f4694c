package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress reports per-post results, either as log lines or as a bar.
// While a bar is shown, log output is routed above it.
type progress struct {
	verb  string
	total int
	p     *mpb.Progress
	bar   *mpb.Bar
}

func newProgress(enabled bool, verb string, total int) *progress {
	pr := &progress{verb: verb, total: total}
	if !enabled {
		return pr
	}

	pr.p = mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithWidth(80),
		mpb.WithRefreshRate(180*time.Millisecond),
	)
	pr.bar = pr.p.AddBar(int64(total),
		mpb.BarFillerClearOnComplete(),
		mpb.PrependDecorators(
			decor.OnComplete(decor.Name(verb), "done"),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d / %d"),
		),
	)
	if total == 0 {
		pr.bar.SetTotal(0, true)
	}
	logrus.SetOutput(pr.p)
	return pr
}

// done records the n-th finished post. It must not be called concurrently.
func (pr *progress) done(n int, name string, err error) {
	if err != nil {
		logrus.Errorf("[%d/%d] ERROR %s %s: %v", n, pr.total, pr.verb, name, err)
	} else if pr.bar == nil {
		logrus.Infof("[%d/%d] Converted: %s", n, pr.total, name)
	}
	if pr.bar != nil {
		pr.bar.Increment()
	}
}

func (pr *progress) wait() {
	if pr.p == nil {
		return
	}
	if !pr.bar.Completed() {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
	logrus.SetOutput(os.Stderr)
}
