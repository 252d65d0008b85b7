package extract

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	excessBlanks = regexp.MustCompile(`\n{3,}`)
)

// Normalize collapses extraction noise while preserving paragraph breaks:
// each line is trimmed and its internal whitespace runs become single
// spaces, and runs of three or more newlines collapse to exactly two.
func Normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalWS.ReplaceAllString(line, " "))
	}
	joined := strings.Join(lines, "\n")
	joined = excessBlanks.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
