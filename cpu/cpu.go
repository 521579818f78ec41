package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/lc3vm/console"
)

// Console is the device the trap routines perform I/O against.
type Console = console.Console

// General-purpose register indices. R7 conventionally holds the
// subroutine return address.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
)

// PC_START is the conventional load origin of user programs.
const PC_START = uint16(0x3000)

// Cpu is the register file and execution state of one LC-3 run.
type Cpu struct {
	Verbose bool // Set to enable per-instruction trace logging.

	Mem *Memory // Memory of this run.

	Reg  [8]uint16 // General-purpose register bank.
	PC   uint16    // Program counter.
	Cond Flag      // Condition flag register.

	Console Console // Console device used by the trap routines.

	Halted bool // Set by the HALT trap routine.
}

// NewCpu creates a CPU with zeroed registers and its own memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Mem: &Memory{},
	}
	cpu.Reset()

	return
}

// Reset zeroes the register bank, sets the condition flags to Z, and
// points the PC at the conventional user-space origin. The image loader
// overrides the PC with the image's own origin.
func (cpu *Cpu) Reset() {
	clear(cpu.Reg[:])
	cpu.PC = PC_START
	cpu.Cond = FL_ZRO
	cpu.Halted = false
}

// String returns the current register file state as a string.
func (cpu *Cpu) String() (text string) {
	for n, val := range cpu.Reg {
		text += fmt.Sprintf("  r%d: 0x%04x\n", n, val)
	}
	text += fmt.Sprintf("  pc: 0x%04x\n", cpu.PC)
	text += fmt.Sprintf("cond: %v\n", cpu.Cond)

	return
}

// Step fetches the word at PC, increments PC, and dispatches to the
// decoded opcode's handler. A word decoding to RES, RTI, or an unknown
// trap vector is fatal; the returned error names the opcode and the
// address it was fetched from.
func (cpu *Cpu) Step() (err error) {
	addr := cpu.PC
	code := Instruction(cpu.Mem.Read(addr))
	cpu.PC++

	if cpu.Verbose {
		log.Printf("%04x: %v", addr, code)
	}

	handler := dispatch[code.Opcode()]
	if handler == nil {
		cpu.Halted = true
		return &ErrBadOpcode{Op: code.Opcode(), Addr: addr}
	}

	return handler(cpu, code)
}

// updateFlags sets the condition flag register from the value of register
// r. Exactly one of P, Z, N is left set.
func (cpu *Cpu) updateFlags(r int) {
	switch {
	case cpu.Reg[r] == 0:
		cpu.Cond = FL_ZRO
	case cpu.Reg[r]>>15 != 0:
		cpu.Cond = FL_NEG
	default:
		cpu.Cond = FL_POS
	}
}
