// Package render turns message text into the final clippysay output.
package render

import "github.com/diogo/clippysay/pkg/clippy"

// Options configures how a message is laid out.
type Options struct {
	// Wrap word wraps the message at this many columns (0: no wrapping)
	Wrap int

	// BubbleOnly drops the mascot and prints just the speech bubble
	BubbleOnly bool

	// Mascot is the art drawn to the left of the bubble
	Mascot string
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Wrap:       0,
		BubbleOnly: false,
		Mascot:     clippy.Mascot(),
	}
}

// WithWrap returns Options with the specified wrap column.
func (o Options) WithWrap(width int) Options {
	o.Wrap = width
	return o
}

// WithBubbleOnly returns Options with the mascot enabled/disabled.
func (o Options) WithBubbleOnly(enabled bool) Options {
	o.BubbleOnly = enabled
	return o
}

// WithMascot returns Options with the specified mascot art.
func (o Options) WithMascot(mascot string) Options {
	o.Mascot = mascot
	return o
}
