// Command clippysay prints a message in a speech bubble next to a mascot.
package main

import "github.com/diogo/clippysay/internal/commands"

func main() {
	commands.Execute()
}
