package ui

import (
	"os"

	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// TerminalWidth returns the current width of the terminal behind stdout.
// Falls back to defaultTerminalWidth if detection fails.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		return defaultTerminalWidth
	}
	return width
}
