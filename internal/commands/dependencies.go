package commands

import (
	"github.com/atotto/clipboard"

	"github.com/diogo/clippysay/internal/render"
	"github.com/diogo/clippysay/internal/tui"
)

// PreviewFunc runs the interactive preview.
type PreviewFunc func(initial string, opts render.Options) (tui.PreviewResult, error)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Clipboard copies rendered output to the system clipboard.
	Clipboard func(text string) error

	// Preview runs the interactive live preview.
	Preview PreviewFunc
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		Clipboard: clipboard.WriteAll,
		Preview:   tui.RunPreview,
	}
}

// withDefaults fills any nil field with its production implementation.
func (d *Dependencies) withDefaults() *Dependencies {
	defaults := NewDependencies()
	if d == nil {
		return defaults
	}
	out := *d
	if out.Clipboard == nil {
		out.Clipboard = defaults.Clipboard
	}
	if out.Preview == nil {
		out.Preview = defaults.Preview
	}
	return &out
}
