package main

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
)

const (
	descLimit = 2800

	accentColor = 0x007D9C
)

// runSummary collects what each step of process did.
type runSummary struct {
	export  string
	convert convertStats
	jsonl   jsonlStats
	batch   batchStats
}

func summaryEmbed(s runSummary) discord.Embed {
	var lines []string
	for _, f := range s.batch.Files {
		lines = append(lines, fmt.Sprintf("`%s`: %s posts, %s", f.Name, humanize.Comma(int64(f.Posts)), humanize.Bytes(uint64(f.Size))))
	}
	files, _ := truncate(lines, descLimit)

	return discord.Embed{
		Title:       "Processed " + s.export,
		Description: files,
		Color:       accentColor,
		Fields: []discord.EmbedField{
			{Name: "Converted", Value: countLine(s.convert.Converted, s.convert.Failed, "failed"), Inline: true},
			{Name: "JSONL", Value: countLine(s.jsonl.Processed, s.jsonl.Missing, "without metadata"), Inline: true},
			{Name: "Quarterly", Value: countLine(s.batch.Posts, s.batch.Missing, "missing"), Inline: true},
		},
		Footer: &discord.EmbedFooter{
			Text: runInfo(),
		},
	}
}

func countLine(ok, bad int, badLabel string) string {
	if bad == 0 {
		return humanize.Comma(int64(ok))
	}
	return fmt.Sprintf("%s (%s %s)", humanize.Comma(int64(ok)), humanize.Comma(int64(bad)), badLabel)
}

func failEmbed(title, description string) discord.Embed {
	description = strings.TrimSpace(description)
	if len(description) > descLimit {
		description = description[:descLimit] + "..."
	}
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}
