// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"
	"os"

	"github.com/ezrec/lc3vm/console"
	"github.com/ezrec/lc3vm/cpu"
)

// State of the execution loop.
type State int

const (
	RUNNING = State(0) // Executing instructions.
	HALTED  = State(1) // Terminal; entered via the HALT trap or a fatal error.
)

// Emulator drives one LC-3 run: a CPU with its memory, a console device,
// and the RUNNING/HALTED loop state.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	State State // Current execution loop state.
}

// New creates an emulator wired to the given console. The console serves
// both as the keyboard behind the memory-mapped status register and as the
// device the trap routines perform I/O against.
func New(con console.Console) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.Console = con
	emu.Cpu.Mem.Keyboard = con

	return
}

// LoadImageFile loads one memory image file. A missing, unreadable, or
// truncated file is a fatal load error; nothing executes afterwards.
func (emu *Emulator) LoadImageFile(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	return emu.Cpu.LoadImage(file)
}

// Step executes a single instruction. Exhausted console input surfaces
// from GETC/IN as a non-fatal condition and the run continues; any other
// error halts the loop and is wrapped with the instruction's fetch
// address.
func (emu *Emulator) Step() (err error) {
	if emu.State == HALTED {
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.PC
	err = emu.Cpu.Step()
	if errors.Is(err, console.ErrNoInput) {
		if emu.Verbose {
			log.Printf("%04x: %v", addr, err)
		}
		err = nil
	}
	if err != nil {
		emu.State = HALTED
		err = &ErrRuntime{Addr: addr, Err: err}
		return
	}

	if emu.Cpu.Halted {
		emu.State = HALTED
	}

	return
}

// Run steps the loop until it leaves the RUNNING state.
func (emu *Emulator) Run() (err error) {
	for emu.State == RUNNING {
		err = emu.Step()
		if err != nil {
			return
		}
	}

	return
}
