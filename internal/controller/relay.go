package controller

import (
	"io"
	"os"

	"github.com/itk-dev/termdrop/internal/fault"
	"github.com/itk-dev/termdrop/internal/game"
	"github.com/itk-dev/termdrop/internal/protocol"
)

// Relay forwards commands to the renderer
type Relay interface {
	// Send delivers one gameplay command
	Send(cmd game.Command) error
	// Terminate ends the renderer unconditionally
	Terminate() error
}

// Signaler delivers out-of-band signals to a process. *os.Process
// satisfies it.
type Signaler interface {
	Signal(sig os.Signal) error
}

// PipeRelay writes commands to the renderer's stdin pipe and notifies it
// with a signal after each byte
type PipeRelay struct {
	w    io.Writer
	proc Signaler
}

// NewPipeRelay returns a relay writing to w and signalling proc
func NewPipeRelay(w io.Writer, proc Signaler) *PipeRelay {
	return &PipeRelay{w: w, proc: proc}
}

// Send writes cmd as a single byte, then signals the renderer. The byte is
// always in the pipe before the signal goes out.
func (r *PipeRelay) Send(cmd game.Command) error {
	n, err := r.w.Write([]byte{byte(cmd)})
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fault.IO("write command", err)
	}
	if err := r.proc.Signal(protocol.SignalCommand); err != nil {
		return fault.Channel("notify renderer", err)
	}
	return nil
}

// Terminate kills the renderer without draining the pipe
func (r *PipeRelay) Terminate() error {
	if err := r.proc.Signal(protocol.SignalTerminate); err != nil {
		return fault.Channel("terminate renderer", err)
	}
	return nil
}
