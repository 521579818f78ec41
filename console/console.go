// Package console provides the keyboard/display device models for the LC-3
// emulator, and the raw-terminal scoped resource the hosting process uses
// while a program runs.
package console

import (
	"io"
)

// Console defines the interface for the emulated machine's console device.
// The keyboard side supports both a non-blocking poll (driven by reads of
// the memory-mapped status register) and a blocking read (driven by the
// GETC and IN trap routines). The display side is a plain byte writer.
type Console interface {
	// Poll returns a pending key, if any, without blocking.
	Poll() (key byte, ok bool)
	// ReadKey blocks until a key arrives. Returns ErrNoInput once the
	// input source is exhausted.
	ReadKey() (key byte, err error)
	// Write sends raw bytes to the display.
	io.Writer
}

// Stdio is a Console backed by a reader and writer pair, normally the
// process's standard input and output. A single goroutine feeds keys from
// the reader into a buffered channel so that Poll never blocks.
type Stdio struct {
	Output io.Writer

	keys chan byte
}

var _ Console = (*Stdio)(nil)

// NewStdio creates a console fed by in and writing to out.
func NewStdio(in io.Reader, out io.Writer) (con *Stdio) {
	con = &Stdio{
		Output: out,
		keys:   make(chan byte, 1),
	}

	go con.readKeys(in)

	return
}

// readKeys pumps single bytes from the input into the key channel and
// closes it when the input is exhausted.
func (con *Stdio) readKeys(in io.Reader) {
	defer close(con.keys)

	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			con.keys <- one[0]
		}
		if err != nil {
			return
		}
	}
}

// Poll returns a pending key without blocking.
func (con *Stdio) Poll() (key byte, ok bool) {
	select {
	case key, ok = <-con.keys:
	default:
	}

	return
}

// ReadKey blocks until a key arrives, or returns ErrNoInput if the input
// source has been exhausted.
func (con *Stdio) ReadKey() (key byte, err error) {
	key, ok := <-con.keys
	if !ok {
		err = ErrNoInput
	}

	return
}

// Write sends raw bytes to the display.
func (con *Stdio) Write(p []byte) (n int, err error) {
	return con.Output.Write(p)
}
