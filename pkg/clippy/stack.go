package clippy

import "strings"

// StackHorizontally places right next to left. Every line of right starts at
// the column just past the widest line of left; shorter left lines are padded
// with spaces. When one block is shorter its missing lines are treated as
// empty. The result has no trailing newline.
func StackHorizontally(left, right string) string {
	leftLines := Lines(left)
	rightLines := Lines(right)
	height := max(len(leftLines), len(rightLines))
	column := longest(leftLines)

	var sb strings.Builder
	for i := 0; i < height; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		padRight(&sb, lineAt(leftLines, i), column)
		sb.WriteString(lineAt(rightLines, i))
	}
	return sb.String()
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
