// Package tui provides the interactive live preview for clippysay.
package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night palette
var (
	colorBorder   = lipgloss.Color("#414868")
	colorPrimary  = lipgloss.Color("#7aa2f7")
	colorAccent   = lipgloss.Color("#bb9af7")
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
)

var (
	// Title line at the top of the screen
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Mode badge shown next to the title
	badgeStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			PaddingLeft(1)

	// Rendered output panel
	previewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText)

	// Input panel
	inputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary)

	// Key hints at the bottom
	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Separator between hints
	hintSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)
)

// renderHints joins key hints into a single status line
func renderHints(hints ...string) string {
	sep := hintSepStyle.Render(" • ")
	out := ""
	for i, h := range hints {
		if i > 0 {
			out += sep
		}
		out += hintStyle.Render(h)
	}
	return out
}
