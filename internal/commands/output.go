package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTextDim = lipgloss.Color("#565f89")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorError   = lipgloss.Color("#f7768e")
)

var (
	verboseStyle = lipgloss.NewStyle().Foreground(colorTextDim)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle    = lipgloss.NewStyle().Foreground(colorError)
)

// reporter writes status lines to stderr. Verbose lines are dropped unless
// verbose is set.
type reporter struct {
	w       io.Writer
	verbose bool
}

func (r reporter) verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.w, verboseStyle.Render("· "+fmt.Sprintf(format, args...)))
}

func (r reporter) successf(format string, args ...any) {
	fmt.Fprintln(r.w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (r reporter) warnf(format string, args ...any) {
	fmt.Fprintln(r.w, warnStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}
