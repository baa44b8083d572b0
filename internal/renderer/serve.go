package renderer

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/itk-dev/termdrop/internal/game"
	"github.com/itk-dev/termdrop/internal/protocol"
	"github.com/itk-dev/termdrop/internal/ui"
)

// Options configures a renderer process
type Options struct {
	Width  int
	Height int
	Tick   time.Duration
	Rotate game.RotateRule
	Center bool
}

// Subscribe starts capturing command notifications. Call it before any
// other start-up work: a notification that arrives before this would be
// lost while its byte stays in the pipe. The caller owns the channel and
// should signal.Stop it when done.
func Subscribe() chan os.Signal {
	// Ctrl+C reaches the whole process group; the controller decides
	// when the renderer goes away
	signal.Ignore(os.Interrupt)

	notify := make(chan os.Signal, 16)
	signal.Notify(notify, protocol.SignalCommand)
	return notify
}

// Serve builds the game from opts and runs it. Each value on notify
// means a command byte is waiting on src. Frames go to out.
func Serve(ctx context.Context, opts Options, notify <-chan os.Signal, src io.Reader, out io.Writer) error {
	state, err := game.NewState(opts.Width, opts.Height, opts.Rotate)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(opts.Tick)
	defer ticker.Stop()

	padding := 0
	if opts.Center {
		padding = ui.CenterPadding(opts.Width)
	}

	log.Printf("renderer running: board=%dx%d tick=%s rotate=%s",
		opts.Width, opts.Height, opts.Tick, opts.Rotate)

	return New(state, src, ui.NewScreen(out, padding), notify, ticker.C).Run(ctx)
}
