// Package controller reads keystrokes and relays gameplay commands to the
// renderer process.
package controller

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/itk-dev/termdrop/internal/fault"
	"github.com/itk-dev/termdrop/internal/game"
	"github.com/itk-dev/termdrop/internal/ui"
)

// Controller turns a stream of raw key bytes into relayed commands
type Controller struct {
	in    io.Reader
	relay Relay
}

// New creates a controller reading keys from in
func New(in io.Reader, relay Relay) *Controller {
	return &Controller{
		in:    in,
		relay: relay,
	}
}

// Run reads one key at a time until Quit, end of input or cancellation.
// Moves are relayed, Quit terminates the renderer, anything else is
// dropped. The renderer is terminated on every exit path.
func (c *Controller) Run(ctx context.Context) error {
	keyCh := make(chan byte)
	errCh := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		errCh <- ui.ReadKeys(c.in, keyCh, done)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Printf("controller cancelled: %v", ctx.Err())
			if err := c.relay.Terminate(); err != nil {
				return err
			}
			return ctx.Err()

		case err := <-errCh:
			if errors.Is(err, io.EOF) {
				log.Printf("input closed")
				return c.relay.Terminate()
			}
			c.relay.Terminate()
			return fault.IO("read key", err)

		case b := <-keyCh:
			cmd, ok := game.Parse(b)
			if !ok {
				continue
			}
			if cmd == game.Quit {
				log.Printf("quit requested")
				return c.relay.Terminate()
			}
			if err := c.relay.Send(cmd); err != nil {
				c.relay.Terminate()
				return err
			}
		}
	}
}
