package clippy

import "strings"

// Bubble frames text in a speech bubble drawn with DefaultGlyphs.
func Bubble(text string) string {
	return DefaultGlyphs().Bubble(text)
}

// Bubble frames text in a speech bubble. Each line of text gets its own row,
// padded with spaces to the width of the widest line. A blank row sits above
// and below the text, and the tail follows the bottom border.
func (g GlyphSet) Bubble(text string) string {
	contentWidth := g.ContentWidth(text)
	bubbleWidth := g.BubbleWidth(contentWidth)

	var sb strings.Builder
	g.border(&sb, g.TopLeft, g.Top, g.TopRight, bubbleWidth)
	g.row(&sb, "", contentWidth)
	for _, line := range Lines(text) {
		g.row(&sb, line, contentWidth)
	}
	g.row(&sb, "", contentWidth)
	g.border(&sb, g.BottomLeft, g.Bottom, g.BottomRight, bubbleWidth)
	sb.WriteString(g.Tail)
	return sb.String()
}

// border writes left + side*n + right, where n fills the bubble width.
func (g GlyphSet) border(sb *strings.Builder, left, side, right string, bubbleWidth int) {
	n := max(0, bubbleWidth-DisplayWidth(left)-DisplayWidth(right))
	sb.WriteString(left)
	sb.WriteString(strings.Repeat(side, n))
	sb.WriteString(right)
	sb.WriteByte('\n')
}

func (g GlyphSet) row(sb *strings.Builder, line string, contentWidth int) {
	sb.WriteString(g.Left)
	padRight(sb, line, contentWidth)
	sb.WriteString(g.Right)
	sb.WriteByte('\n')
}
