package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/itk-dev/termdrop/internal/controller"
	"github.com/itk-dev/termdrop/internal/fault"
	"github.com/itk-dev/termdrop/internal/renderer"
	"github.com/itk-dev/termdrop/internal/ui"
)

var version = "dev"

// app collects the parsed flags of every command
type app struct {
	play         gameConfig
	draw         gameConfig
	rendererPath string
	showVersion  bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		fault.Exit(err)
	}
}

func run(args []string) error {
	a := &app{}
	root := buildCLI(a)
	if err := root.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}
	return root.Run(context.Background())
}

func buildCLI(a *app) *ffcli.Command {
	opts := []ff.Option{ff.WithEnvVarPrefix(envPrefix)}

	// Renderer, spawned by the controller
	drawFlagSet := flag.NewFlagSet("termdrop draw", flag.ContinueOnError)
	a.draw.register(drawFlagSet)

	drawCmd := &ffcli.Command{
		Name:       "draw",
		ShortUsage: "termdrop draw [flags]",
		ShortHelp:  "Run the renderer (started by termdrop itself)",
		FlagSet:    drawFlagSet,
		Options:    opts,
		Exec: func(ctx context.Context, _ []string) error {
			notify := renderer.Subscribe()
			defer signal.Stop(notify)
			return execRenderer(ctx, &a.draw, notify)
		},
	}

	// Controller
	rootFlagSet := flag.NewFlagSet("termdrop", flag.ContinueOnError)
	a.play.register(rootFlagSet)
	rootFlagSet.StringVar(&a.rendererPath, "renderer", "", "Renderer executable (defaults to this binary)")
	rootFlagSet.BoolVar(&a.showVersion, "v", false, "Show version")

	return &ffcli.Command{
		ShortUsage:  "termdrop [flags]",
		ShortHelp:   "A falling bar in a box, driven from a second process",
		LongHelp:    "Controls:\n  a  left\n  d  right\n  s  down\n  w  rotate\n  q  quit",
		FlagSet:     rootFlagSet,
		Options:     opts,
		Subcommands: []*ffcli.Command{drawCmd},
		Exec: func(ctx context.Context, _ []string) error {
			if a.showVersion {
				fmt.Printf("termdrop version %s\n", version)
				return nil
			}
			return execController(ctx, &a.play, a.rendererPath)
		},
	}
}

func execController(parent context.Context, cfg *gameConfig, rendererPath string) error {
	if _, err := cfg.options(); err != nil {
		return err
	}
	if logFile := setupLogging(cfg.debug, "controller"); logFile != nil {
		defer logFile.Close()
	}

	if rendererPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return fault.Channel("locate executable", err)
		}
		rendererPath = exe
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	raw, err := ui.AcquireRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer raw.Close()

	r, err := controller.Spawn(rendererPath, append([]string{"draw"}, cfg.args()...)...)
	if err != nil {
		return err
	}

	// Hide cursor and ensure we show it again on exit
	ui.HideCursor()
	defer func() {
		ui.ShowCursor()
		ui.ClearScreen()
		fmt.Println("Goodbye!")
	}()

	runErr := controller.New(os.Stdin, r.Relay()).Run(ctx)
	waitErr := r.Wait()

	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if runErr != nil {
		return runErr
	}
	return waitErr
}

func execRenderer(ctx context.Context, cfg *gameConfig, notify <-chan os.Signal) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	if logFile := setupLogging(cfg.debug, "renderer"); logFile != nil {
		defer logFile.Close()
	}
	return renderer.Serve(ctx, opts, notify, os.Stdin, os.Stdout)
}
