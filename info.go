package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

var started = time.Now()

func runInfo() string {
	stats := runtime.MemStats{}
	runtime.ReadMemStats(&stats)

	return fmt.Sprintf("Go %s, took %s, memory %s / %s (alloc / sys)",
		runtime.Version(),
		time.Since(started).Round(time.Millisecond),
		humanize.Bytes(stats.Alloc), humanize.Bytes(stats.Sys))
}
