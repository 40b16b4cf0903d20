package bank

import (
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the Go time layout for update-entry timestamps.
// Rendered entries read: [YYYY-MM-DD HH:MM:SS] - Summary
const TimestampLayout = "2006-01-02 15:04:05"

// TimestampFormat is the literal format string declared by every
// update rule in the trigger table.
const TimestampFormat = "[YYYY-MM-DD HH:MM:SS] - [Summary]"

// entryPattern matches a rendered update entry at the start of a line.
var entryPattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] - .+`)

// FormatEntry renders a timestamped update entry.
func FormatEntry(ts time.Time, summary string) string {
	return "[" + ts.Format(TimestampLayout) + "] - " + summary
}

// IsEntry reports whether a line is a timestamped update entry.
func IsEntry(line string) bool {
	return entryPattern.MatchString(line)
}

// CountEntries counts timestamped update entries in file content.
func CountEntries(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if IsEntry(line) {
			count++
		}
	}
	return count
}
