package clippy

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// widthCondition pins ambiguous-width characters to one column regardless of
// LANG or RUNEWIDTH_EASTASIAN.
var widthCondition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// DisplayWidth returns the number of terminal columns s occupies.
// Control characters count as zero columns.
func DisplayWidth(s string) int {
	return widthCondition.StringWidth(s)
}

// Lines splits s into lines. A trailing "\r" is stripped from each line and a
// final newline does not start an extra, empty line. The empty string has no
// lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineCount returns the number of lines in s as reported by Lines.
func LineCount(s string) int {
	return len(Lines(s))
}

// LongestLineWidth returns the display width of the widest line in s,
// or 0 when s has no lines.
func LongestLineWidth(s string) int {
	return longest(Lines(s))
}

func longest(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := DisplayWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// padRight appends spaces to line until it is width columns wide.
// Lines already at or past width are written unchanged.
func padRight(sb *strings.Builder, line string, width int) {
	sb.WriteString(line)
	if n := width - DisplayWidth(line); n > 0 {
		sb.WriteString(strings.Repeat(" ", n))
	}
}
