// Package renderer runs the game side of termdrop: it owns the state,
// applies commands read from its stdin and redraws after every change.
package renderer

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/itk-dev/termdrop/internal/fault"
	"github.com/itk-dev/termdrop/internal/game"
)

// Drawer renders one full frame of the game
type Drawer interface {
	Draw(state *game.State) error
}

// Loop multiplexes command notifications and timer ticks onto a single
// goroutine that owns the game state
type Loop struct {
	state  *game.State
	src    io.Reader
	screen Drawer
	notify <-chan os.Signal
	ticks  <-chan time.Time
}

// New creates a loop. Each value on notify means one byte is waiting on src.
func New(state *game.State, src io.Reader, screen Drawer, notify <-chan os.Signal, ticks <-chan time.Time) *Loop {
	return &Loop{
		state:  state,
		src:    src,
		screen: screen,
		notify: notify,
		ticks:  ticks,
	}
}

// Run draws the initial frame and then services notifications and ticks
// until a Quit command arrives or ctx is cancelled. A failed read or draw
// ends the loop with an error.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.screen.Draw(l.state); err != nil {
		return err
	}

	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.notify:
			if _, err := io.ReadFull(l.src, buf); err != nil {
				return fault.IO("read command", err)
			}
			cmd, ok := game.Parse(buf[0])
			if !ok {
				log.Printf("ignoring unknown command byte %q", buf[0])
				continue
			}
			out := l.state.Apply(cmd)
			if l.state.Stopped {
				log.Printf("quit received")
				return nil
			}
			if out.Redraw {
				if err := l.screen.Draw(l.state); err != nil {
					return err
				}
			}

		case <-l.ticks:
			l.state.Tick()
			if err := l.screen.Draw(l.state); err != nil {
				return err
			}
		}
	}
}
