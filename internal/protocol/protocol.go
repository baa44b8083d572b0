// Package protocol defines the out-of-band half of the controller to
// renderer protocol. The in-band half is one game.Command byte per
// notification on the renderer's stdin.
package protocol

import (
	"os"

	"golang.org/x/sys/unix"
)

var (
	// SignalCommand tells the renderer one command byte is waiting on its stdin
	SignalCommand os.Signal = unix.SIGUSR2
	// SignalTerminate ends the renderer immediately and cannot be caught
	SignalTerminate os.Signal = unix.SIGKILL
)
