package diag

import "fmt"

// Truncate keeps at most limit items and reports how many were dropped.
// A negative limit is treated as zero.
func Truncate[T any](items []T, limit int) (kept []T, omitted int) {
	if limit < 0 {
		limit = 0
	}
	if len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

// clip bounds s to limit runes, appending TruncationMarker when anything was cut.
func clip(s string, limit int) string {
	kept, omitted := Truncate([]rune(s), limit)
	if omitted == 0 {
		return s
	}
	return string(kept) + TruncationMarker
}

// stackLines indents a trace and bounds it to MaxStackLines.
func stackLines(trace []string) []string {
	kept, omitted := Truncate(trace, MaxStackLines)

	lines := make([]string, 0, len(kept)+1)
	for _, line := range kept {
		lines = append(lines, "    "+line)
	}
	if omitted > 0 {
		lines = append(lines, fmt.Sprintf("    ... %d more lines omitted", omitted))
	}
	return lines
}
