package cpu

import (
	"errors"

	"github.com/ezrec/lc3vm/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrImageTruncated = errors.New(f("image truncated"))
)

// ErrBadOpcode is the fatal condition raised by fetching a word whose
// opcode field has no handler (RES, RTI).
type ErrBadOpcode struct {
	Op   Opcode
	Addr uint16
}

func (err *ErrBadOpcode) Error() string {
	return f("bad opcode %v at 0x%04x", err.Op, err.Addr)
}

func (err *ErrBadOpcode) Is(target error) (ok bool) {
	_, ok = target.(*ErrBadOpcode)
	return
}

// ErrBadTrap is the fatal condition raised by a TRAP instruction whose
// vector has no routine.
type ErrBadTrap struct {
	Vector TrapVector
	Addr   uint16
}

func (err *ErrBadTrap) Error() string {
	return f("bad trap vector 0x%02x at 0x%04x", uint16(err.Vector), err.Addr)
}

func (err *ErrBadTrap) Is(target error) (ok bool) {
	_, ok = target.(*ErrBadTrap)
	return
}
