package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/itk-dev/termdrop/internal/game"
	"github.com/itk-dev/termdrop/internal/renderer"
)

// Defaults
const (
	defaultWidth  = 20
	defaultHeight = 20
	defaultTick   = time.Second
	envPrefix     = "TERMDROP"
)

// gameConfig holds the settings shared by the controller and renderer.
// The controller forwards them to the renderer on its command line.
type gameConfig struct {
	width  int
	height int
	tick   time.Duration
	rotate string
	center bool
	debug  bool
}

// usageError marks a configuration problem, as opposed to a failed
// system call
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func (c *gameConfig) register(fs *flag.FlagSet) {
	fs.IntVar(&c.width, "width", defaultWidth, "Board width in cells, border included")
	fs.IntVar(&c.height, "height", defaultHeight, "Board height in cells, border included")
	fs.DurationVar(&c.tick, "tick", defaultTick, "Interval between automatic moves down")
	fs.StringVar(&c.rotate, "rotate", game.RotateChecked.String(), "Rotation check: checked or legacy")
	fs.BoolVar(&c.center, "center", false, "Center the board in the terminal")
	fs.BoolVar(&c.debug, "debug", false, "Write a debug log to the temp directory")
}

// options validates the config and converts it for the renderer
func (c *gameConfig) options() (renderer.Options, error) {
	if c.width < game.MinWidth || c.height < game.MinHeight {
		return renderer.Options{}, usageError{fmt.Errorf("board %dx%d is smaller than the minimum %dx%d",
			c.width, c.height, game.MinWidth, game.MinHeight)}
	}
	if c.tick <= 0 {
		return renderer.Options{}, usageError{fmt.Errorf("tick must be positive, got %s", c.tick)}
	}
	rule, err := game.ParseRotateRule(c.rotate)
	if err != nil {
		return renderer.Options{}, usageError{err}
	}

	return renderer.Options{
		Width:  c.width,
		Height: c.height,
		Tick:   c.tick,
		Rotate: rule,
		Center: c.center,
	}, nil
}

// args renders the config as flags for the renderer subcommand
func (c *gameConfig) args() []string {
	return []string{
		"-width=" + strconv.Itoa(c.width),
		"-height=" + strconv.Itoa(c.height),
		"-tick=" + c.tick.String(),
		"-rotate=" + c.rotate,
		"-center=" + strconv.FormatBool(c.center),
		"-debug=" + strconv.FormatBool(c.debug),
	}
}
