package clippy

import (
	_ "embed"
)

//go:embed mascot.txt
var mascot string

// Mascot returns the built-in mascot art verbatim. It starts and ends with a
// newline.
func Mascot() string {
	return mascot
}

// GlyphSet holds the fragments a speech bubble is drawn from. Top and Bottom
// are repeated to stretch the border; every other fragment is drawn once.
// Tail is written below the bottom border as-is and should end with a
// newline.
type GlyphSet struct {
	TopLeft     string
	Top         string
	TopRight    string
	Left        string
	Right       string
	BottomLeft  string
	Bottom      string
	BottomRight string
	Tail        string
}

// DefaultGlyphs returns the braille border whose tail points down and to the
// left, toward the mascot.
func DefaultGlyphs() GlyphSet {
	return GlyphSet{
		TopLeft:     "   ⣴⡾⠿",
		Top:         "⠿",
		TopRight:    "⠿⢷⣦",
		Left:        "   ⣿⡇  ",
		Right:       "  ⢸⣿",
		BottomLeft:  "   ⠙⣿⡆       ⣴⣶",
		Bottom:      "⣶",
		BottomRight: "⣾⠟",
		Tail: "   ⢰⣿     ⢀⣠⣾⠟⠋\n" +
			"  ⣠⣿⠃ ⢀⣠⣤⣾⠟⠋\n" +
			"  ⢿⣷⡾⠿⠟⠛⠉\n",
	}
}

// MinimumTextWidth is the narrowest content area that still leaves room for
// the fixed part of the bottom border.
func (g GlyphSet) MinimumTextWidth() int {
	return max(0, DisplayWidth(g.BottomLeft)+DisplayWidth(g.BottomRight)-
		DisplayWidth(g.Left)-DisplayWidth(g.Right))
}

// BubbleWidth returns the full width of a bubble whose content area is
// contentWidth columns wide.
func (g GlyphSet) BubbleWidth(contentWidth int) int {
	return DisplayWidth(g.Left) + contentWidth + DisplayWidth(g.Right)
}

// ContentWidth returns the content area width used for text: its widest
// line, but never less than MinimumTextWidth.
func (g GlyphSet) ContentWidth(text string) int {
	return max(LongestLineWidth(text), g.MinimumTextWidth())
}
