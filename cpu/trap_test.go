package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3vm/console"
)

// newScripted creates a CPU with a scripted console.
func newScripted(keys string) (cpu *Cpu, con *console.Script) {
	con = console.NewScript(keys)
	cpu = NewCpu()
	cpu.Console = con
	cpu.Mem.Keyboard = con

	return
}

func TestTrapGetc(t *testing.T) {
	assert := assert.New(t)

	cpu, con := newScripted("a")

	assert.NoError(runOne(cpu, MakeTrap(TRAP_GETC)))
	assert.Equal(uint16('a'), cpu.Reg[R0])
	assert.Equal(FL_POS, cpu.Cond)

	// No echo, and the return address was saved before dispatch.
	assert.Equal("", con.Output())
	assert.Equal(uint16(0x3001), cpu.Reg[R7])
}

func TestTrapGetcNoInput(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newScripted("")
	cpu.Reg[R0] = 0x1111

	// Exhausted input is reported, not fatal; R0 is left untouched.
	err := runOne(cpu, MakeTrap(TRAP_GETC))
	assert.ErrorIs(err, console.ErrNoInput)
	assert.Equal(uint16(0x1111), cpu.Reg[R0])
	assert.False(cpu.Halted)
}

func TestTrapOut(t *testing.T) {
	assert := assert.New(t)

	cpu, con := newScripted("")
	cpu.Reg[R0] = uint16('X') | 0xab00 // only the low byte is written

	assert.NoError(runOne(cpu, MakeTrap(TRAP_OUT)))
	assert.Equal("X", con.Output())
}

func TestTrapPuts(t *testing.T) {
	assert := assert.New(t)

	cpu, con := newScripted("")
	for n, c := range "Hi!" {
		cpu.Mem.Write(0x4000+uint16(n), uint16(c))
	}
	cpu.Reg[R0] = 0x4000

	assert.NoError(runOne(cpu, MakeTrap(TRAP_PUTS)))
	assert.Equal("Hi!", con.Output())
}

func TestTrapIn(t *testing.T) {
	assert := assert.New(t)

	cpu, con := newScripted("q")

	assert.NoError(runOne(cpu, MakeTrap(TRAP_IN)))
	assert.Equal(uint16('q'), cpu.Reg[R0])
	assert.Equal("Enter a character: q", con.Output())
}

func TestTrapPutsp(t *testing.T) {
	assert := assert.New(t)

	cpu, con := newScripted("")

	// "Hello" packed two characters per cell, low byte first; the odd
	// final character leaves its cell's high byte zero.
	packed := []uint16{
		uint16('H') | uint16('e')<<8,
		uint16('l') | uint16('l')<<8,
		uint16('o'),
	}
	for n, word := range packed {
		cpu.Mem.Write(0x4000+uint16(n), word)
	}
	cpu.Reg[R0] = 0x4000

	assert.NoError(runOne(cpu, MakeTrap(TRAP_PUTSP)))
	assert.Equal("Hello", con.Output())
}

func TestTrapHalt(t *testing.T) {
	assert := assert.New(t)

	cpu, con := newScripted("")

	assert.NoError(runOne(cpu, MakeTrap(TRAP_HALT)))
	assert.True(cpu.Halted)
	assert.Equal("HALT\n", con.Output())
}

func TestTrapUnknownVector(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newScripted("")

	err := runOne(cpu, MakeTrap(TrapVector(0x30)))

	var bad *ErrBadTrap
	if assert.ErrorAs(err, &bad) {
		assert.Equal(TrapVector(0x30), bad.Vector)
		assert.Equal(uint16(0x3000), bad.Addr)
	}
	assert.True(cpu.Halted)
}
