package ui

// frameLayout holds the horizontal placement of a board frame in the terminal
type frameLayout struct {
	padding int
}

// calcFrameLayout centers a board of boardWidth columns in a terminal of
// width columns. A board wider than the terminal gets no padding.
func calcFrameLayout(width, boardWidth int) frameLayout {
	l := frameLayout{}

	remaining := width - boardWidth
	if remaining > 0 {
		l.padding = remaining / 2
	}

	return l
}

// CenterPadding returns the left padding that centers a board of
// boardWidth columns in the current terminal
func CenterPadding(boardWidth int) int {
	return calcFrameLayout(TerminalWidth(), boardWidth).padding
}
