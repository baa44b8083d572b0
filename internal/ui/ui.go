package ui

import (
	"bytes"
	"fmt"
	"io"

	"github.com/itk-dev/termdrop/internal/fault"
	"github.com/itk-dev/termdrop/internal/game"
)

// ANSI control sequences
const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// ClearScreen clears the terminal screen
func ClearScreen() {
	fmt.Print(clearScreen)
}

// HideCursor hides the terminal cursor
func HideCursor() {
	fmt.Print(hideCursor)
}

// ShowCursor shows the terminal cursor
func ShowCursor() {
	fmt.Print(showCursor)
}

// Screen draws full frames of the game to a writer
type Screen struct {
	w       io.Writer
	padding int
	buf     bytes.Buffer
}

// NewScreen returns a screen writing to w with every row indented by
// padding spaces
func NewScreen(w io.Writer, padding int) *Screen {
	if padding < 0 {
		padding = 0
	}
	return &Screen{w: w, padding: padding}
}

// Draw puts the shape on the board, writes the whole frame preceded by a
// screen clear and takes the shape off again. The board never keeps the
// shape between frames.
func (s *Screen) Draw(state *game.State) error {
	board := state.Board
	marked := board.Mark(state.Shape)
	defer board.Clear(marked)

	s.buf.Reset()
	s.buf.WriteString(clearScreen)
	for y := 0; y < board.Height(); y++ {
		for i := 0; i < s.padding; i++ {
			s.buf.WriteByte(' ')
		}
		s.buf.Write(board.Row(y))
		s.buf.WriteByte('\n')
	}

	if _, err := s.w.Write(s.buf.Bytes()); err != nil {
		return fault.IO("draw frame", err)
	}
	return nil
}
