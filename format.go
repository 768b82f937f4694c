package main

import (
	"fmt"
	"strings"
)

// truncate joins lines with newlines, stopping before the result would
// exceed limit. The second return reports whether lines were left out.
func truncate(lines []string, limit int) (string, bool) {
	if len(lines) == 0 {
		return "*Nothing written*", false
	}

	b := strings.Builder{}
	for i, line := range lines {
		if i > 0 {
			b.WriteRune('\n')
		}

		// Leave room for the omission note.
		if len(line)+b.Len() > limit-40 {
			fmt.Fprintf(&b, "*%d more omitted*", len(lines)-i)
			return b.String(), true
		}
		b.WriteString(line)
	}
	return b.String(), false
}
