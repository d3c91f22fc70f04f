package clippy

import "strings"

// Say renders text in a speech bubble next to the built-in mascot.
func Say(text string) string {
	return DecorateWith(Mascot(), text)
}

// DecorateWith renders text in a speech bubble next to mascot. When the
// bubble is taller than the mascot, blank lines are added above the mascot so
// its lower end stays level with the bubble's tail.
func DecorateWith(mascot, text string) string {
	bubble := Bubble(text)
	if diff := LineCount(bubble) - LineCount(mascot); diff > 0 {
		mascot = strings.Repeat("\n", diff) + mascot
	}
	return StackHorizontally(mascot, bubble)
}
