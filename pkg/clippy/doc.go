// Package clippy renders a mascot with a speech bubble of user text next to
// it, measured in terminal display columns.
//
// # Overview
//
// The package is built from three layers:
//
//   - Width measurement: DisplayWidth, Lines and LongestLineWidth
//   - Speech bubble: GlyphSet.Bubble frames arbitrary multi-line text
//   - Composition: StackHorizontally places two text blocks side by side
//
// Say ties them together with the built-in mascot:
//
//	fmt.Println(clippy.Say("It looks like you're writing a letter."))
//
// To frame text without the mascot:
//
//	fmt.Print(clippy.Bubble("hello\nworld"))
//
// A custom mascot can be supplied with DecorateWith:
//
//	out := clippy.DecorateWith(myArt, "hi")
//
// # Widths
//
// All widths are display columns, not bytes or runes. Wide glyphs count as
// two columns and zero-width marks as none. The width table is pinned to the
// narrow interpretation of East Asian ambiguous characters so output does not
// change with the terminal locale.
//
// # Concurrency
//
// Every function is pure and returns a freshly built string, so callers may
// use the package from any number of goroutines.
package clippy
