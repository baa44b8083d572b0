package ui

import (
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/itk-dev/termdrop/internal/fault"
)

// RawTerminal holds a terminal in unbuffered, unechoed single-byte read
// mode until Close restores the mode it had before
type RawTerminal struct {
	fd    int
	saved *term.State
	once  sync.Once
}

// AcquireRaw disables line buffering and echo on f and makes every read
// block for exactly one byte. The caller must defer Close.
func AcquireRaw(f *os.File) (*RawTerminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fault.Terminal("stdin is not a terminal", nil)
	}

	saved, err := term.GetState(fd)
	if err != nil {
		return nil, fault.Terminal("get terminal state", err)
	}

	tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fault.Terminal("tcgetattr", err)
	}
	tio.Lflag &^= unix.ICANON | unix.ECHO
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, tio); err != nil {
		return nil, fault.Terminal("tcsetattr", err)
	}

	return &RawTerminal{fd: fd, saved: saved}, nil
}

// Close restores the terminal to its original state. Only the first call
// has any effect.
func (r *RawTerminal) Close() error {
	var err error
	r.once.Do(func() {
		if rerr := term.Restore(r.fd, r.saved); rerr != nil {
			err = fault.Terminal("restore terminal", rerr)
		}
	})
	return err
}

// ReadKeys reads single bytes from r and sends them to keyCh until done
// is closed or the read fails. The read error, io.EOF included, is returned.
func ReadKeys(r io.Reader, keyCh chan<- byte, done <-chan struct{}) error {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			select {
			case keyCh <- buf[0]:
			case <-done:
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}
