package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3vm/console"
)

func TestMemoryPlainCells(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	mem.Write(0x0000, 0x1111)
	mem.Write(0xffff, 0x2222)

	assert.Equal(uint16(0x1111), mem.Read(0x0000))
	assert.Equal(uint16(0x2222), mem.Read(0xffff))
}

func TestMemoryKeyboardLatch(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Keyboard: console.NewScript("ab")}

	// A status read latches the next key and raises the ready bit.
	assert.Equal(KBSR_READY, mem.Read(MR_KBSR))

	// Until the data register is read, further status reads keep the
	// latched key rather than consuming the next one.
	assert.Equal(KBSR_READY, mem.Read(MR_KBSR))
	assert.Equal(uint16('a'), mem.Read(MR_KBDR))

	// Reading the data register drops the ready bit; the next status
	// read latches the second key.
	assert.Equal(KBSR_READY, mem.Read(MR_KBSR))
	assert.Equal(uint16('b'), mem.Read(MR_KBDR))

	// Script exhausted: not ready.
	assert.Equal(uint16(0), mem.Read(MR_KBSR))
}

func TestMemoryKeyboardIdle(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Keyboard: console.NewScript("")}

	assert.Equal(uint16(0), mem.Read(MR_KBSR))

	// A nil keyboard always reads not-ready.
	mem = &Memory{}
	assert.Equal(uint16(0), mem.Read(MR_KBSR))
}

func TestMemoryMappedLoad(t *testing.T) {
	assert := assert.New(t)

	// The device pair is reachable through ordinary LDI instructions.
	cpu, _ := newScripted("k")

	program := []uint16{
		uint16(MakeLdi(R1, 2)), // 0x3000: pointer at 0x3003
		uint16(MakeLdi(R2, 2)), // 0x3001: pointer at 0x3004
		uint16(MakeTrap(TRAP_HALT)),
		MR_KBSR,
		MR_KBDR,
	}
	for n, word := range program {
		cpu.Mem.Write(0x3000+uint16(n), word)
	}

	assert.NoError(cpu.Step())
	assert.Equal(KBSR_READY, cpu.Reg[R1])
	assert.Equal(FL_NEG, cpu.Cond)

	assert.NoError(cpu.Step())
	assert.Equal(uint16('k'), cpu.Reg[R2])
	assert.Equal(FL_POS, cpu.Cond)
}
