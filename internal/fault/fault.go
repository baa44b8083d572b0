// Package fault classifies the failures that end a termdrop process.
// None of them are recovered: the process prints one fixed diagnostic
// and exits.
package fault

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Diagnostic is the only message a failing process writes to stderr
const Diagnostic = "Error in system call\n"

// Kind is the failure category
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindTerminalConfig covers querying or changing terminal attributes
	KindTerminalConfig
	// KindChannel covers pipe creation, spawning, stdin rebinding and signals
	KindChannel
	// KindIO covers reads and writes on the command stream or the screen
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindTerminalConfig:
		return "terminal config"
	case KindChannel:
		return "channel"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a classified failure
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, err error) error {
	if err == nil {
		err = errors.New(op + " failed")
	} else {
		err = errors.WithStack(err)
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Terminal wraps a terminal attribute failure
func Terminal(op string, err error) error { return newError(KindTerminalConfig, op, err) }

// Channel wraps a pipe, process or signal failure
func Channel(op string, err error) error { return newError(KindChannel, op, err) }

// IO wraps a read or write failure
func IO(op string, err error) error { return newError(KindIO, op, err) }

// KindOf returns the kind of the first classified error in the chain
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// Report logs the full error with its stack and writes the fixed
// diagnostic to w
func Report(w io.Writer, err error) {
	log.Printf("fatal: %+v", err)
	io.WriteString(w, Diagnostic)
}

// Exit reports err on stderr and terminates with a nonzero status
func Exit(err error) {
	Report(os.Stderr, err)
	os.Exit(1)
}
