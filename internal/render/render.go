package render

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/diogo/clippysay/pkg/clippy"
)

// tabWidth is the number of spaces a tab expands to. Tabs have no display
// width of their own, so they are replaced before layout.
const tabWidth = 4

// Message renders text according to opts: normalized, optionally wrapped,
// framed in a bubble and, unless BubbleOnly is set, placed next to the mascot.
func Message(text string, opts Options) string {
	text = Normalize(text)
	if opts.Wrap > 0 {
		text = Wrap(text, opts.Wrap)
	}

	if opts.BubbleOnly {
		return clippy.Bubble(text)
	}
	return clippy.DecorateWith(opts.Mascot, text)
}

// Normalize converts line endings to "\n" and expands tabs.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
}

// Wrap word wraps text at width columns. Words longer than width are broken.
// Lines are wrapped one at a time and each keeps its leading spaces on every
// row it is split into; indentation at or past width is dropped.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, width int) string {
	body := strings.TrimLeft(line, " ")
	if body == "" {
		return line
	}
	indent := line[:len(line)-len(body)]

	avail := width - clippy.DisplayWidth(indent)
	if avail < 1 {
		indent, avail = "", width
	}

	// reflow measures with the locale's width table, which never counts a
	// rune narrower than clippy.DisplayWidth does.
	rows := strings.Split(wrap.String(wordwrap.String(body, avail), avail), "\n")
	for i, row := range rows {
		rows[i] = indent + row
	}
	return strings.Join(rows, "\n")
}
