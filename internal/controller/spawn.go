package controller

import (
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"

	"github.com/itk-dev/termdrop/internal/fault"
)

// Renderer is a running renderer process whose stdin is the read end of the
// command pipe
type Renderer struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	relay *PipeRelay
}

// Spawn starts path with args. The child's stdin is rebound to a fresh
// pipe; stdout and stderr stay on the terminal.
func Spawn(path string, args ...string) (*Renderer, error) {
	cmd := exec.Command(path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fault.Channel("create pipe", err)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fault.Channel("spawn renderer", err)
	}
	log.Printf("renderer started: pid=%d path=%s", cmd.Process.Pid, path)

	return &Renderer{
		cmd:   cmd,
		stdin: stdin,
		relay: NewPipeRelay(stdin, cmd.Process),
	}, nil
}

// Relay returns the relay connected to this renderer
func (r *Renderer) Relay() *PipeRelay {
	return r.relay
}

// Wait closes the pipe and reaps the process. A renderer killed by a
// signal is the normal end of a session; a nonzero exit status means it
// failed on its own and is reported.
func (r *Renderer) Wait() error {
	r.stdin.Close()
	err := r.cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			log.Printf("renderer stopped: %v", exitErr)
			return nil
		}
		return fault.Channel("renderer exited", err)
	}
	if err != nil {
		return fault.Channel("wait renderer", err)
	}
	return nil
}
