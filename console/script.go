package console

import (
	"bytes"
)

// Script is a deterministic Console simulation model for tests: a fixed
// sequence of keys, and a captured display buffer.
type Script struct {
	Keys []byte

	display bytes.Buffer
}

var _ Console = (*Script)(nil)

// NewScript creates a scripted console that will deliver the bytes of keys
// in order.
func NewScript(keys string) *Script {
	return &Script{Keys: []byte(keys)}
}

// Poll returns the next scripted key, if any remain.
func (sc *Script) Poll() (key byte, ok bool) {
	if len(sc.Keys) == 0 {
		return
	}

	key = sc.Keys[0]
	sc.Keys = sc.Keys[1:]
	ok = true

	return
}

// ReadKey returns the next scripted key, or ErrNoInput when the script is
// exhausted.
func (sc *Script) ReadKey() (key byte, err error) {
	key, ok := sc.Poll()
	if !ok {
		err = ErrNoInput
	}

	return
}

// Write captures display output.
func (sc *Script) Write(p []byte) (n int, err error) {
	return sc.display.Write(p)
}

// Output returns everything written to the display so far.
func (sc *Script) Output() string {
	return sc.display.String()
}
