package emulator

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3vm/console"
	"github.com/ezrec/lc3vm/cpu"
)

// image assembles a big-endian memory image from an origin and words.
func image(origin uint16, words ...uint16) (data []byte) {
	data = binary.BigEndian.AppendUint16(data, origin)
	for _, word := range words {
		data = binary.BigEndian.AppendUint16(data, word)
	}

	return
}

// boot creates an emulator with a scripted console and the given program
// loaded at 0x3000.
func boot(keys string, words ...uint16) (emu *Emulator, con *console.Script) {
	con = console.NewScript(keys)
	emu = New(con)

	err := emu.Cpu.LoadImage(bytes.NewReader(image(0x3000, words...)))
	if err != nil {
		panic(err)
	}

	return
}

func TestRunHalt(t *testing.T) {
	assert := assert.New(t)

	emu, con := boot("",
		uint16(cpu.MakeAddImm(cpu.R0, cpu.R0, 5)),
		uint16(cpu.MakeTrap(cpu.TRAP_HALT)),
	)

	assert.NoError(emu.Run())
	assert.Equal(HALTED, emu.State)
	assert.Equal(uint16(5), emu.Cpu.Reg[cpu.R0])
	assert.Equal("HALT\n", con.Output())

	// No instruction executes after the halt.
	pc := emu.Cpu.PC
	assert.NoError(emu.Step())
	assert.Equal(pc, emu.Cpu.PC)
}

func TestRunBadOpcode(t *testing.T) {
	assert := assert.New(t)

	emu, _ := boot("", 0xd000) // RES

	err := emu.Run()
	assert.Error(err)
	assert.Equal(HALTED, emu.State)

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(uint16(0x3000), runtime.Addr)
	}

	var bad *cpu.ErrBadOpcode
	if assert.ErrorAs(err, &bad) {
		assert.Equal(cpu.OP_RES, bad.Op)
	}
}

func TestRunEcho(t *testing.T) {
	assert := assert.New(t)

	// GETC then OUT round-trips a key to the display without echo
	// from GETC itself.
	emu, con := boot("z",
		uint16(cpu.MakeTrap(cpu.TRAP_GETC)),
		uint16(cpu.MakeTrap(cpu.TRAP_OUT)),
		uint16(cpu.MakeTrap(cpu.TRAP_HALT)),
	)

	assert.NoError(emu.Run())
	assert.Equal("zHALT\n", con.Output())
}

func TestRunInputExhausted(t *testing.T) {
	assert := assert.New(t)

	// GETC with no input left reports nothing available; the run
	// continues to the halt.
	emu, _ := boot("",
		uint16(cpu.MakeTrap(cpu.TRAP_GETC)),
		uint16(cpu.MakeTrap(cpu.TRAP_HALT)),
	)

	assert.NoError(emu.Run())
	assert.Equal(HALTED, emu.State)
	assert.Equal(uint16(0), emu.Cpu.Reg[cpu.R0])
}

func TestRunSubroutine(t *testing.T) {
	assert := assert.New(t)

	// Call a subroutine that sets R1, return through R7, halt at the
	// instruction after the call site.
	emu, _ := boot("",
		uint16(cpu.MakeJsr(1)),                    // 0x3000 -> 0x3002
		uint16(cpu.MakeTrap(cpu.TRAP_HALT)),       // 0x3001
		uint16(cpu.MakeAddImm(cpu.R1, cpu.R1, 7)), // 0x3002
		uint16(cpu.MakeRet()),                     // 0x3003 -> 0x3001
	)

	assert.NoError(emu.Run())
	assert.Equal(HALTED, emu.State)
	assert.Equal(uint16(7), emu.Cpu.Reg[cpu.R1])
}

func TestLoadImageFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "test.obj")
	err := os.WriteFile(path, image(0x3000, uint16(cpu.MakeTrap(cpu.TRAP_HALT))), 0o644)
	assert.NoError(err)

	emu := New(console.NewScript(""))
	assert.NoError(emu.LoadImageFile(path))
	assert.Equal(uint16(0x3000), emu.Cpu.PC)

	assert.NoError(emu.Run())
	assert.Equal(HALTED, emu.State)
}

func TestLoadImageFileMissing(t *testing.T) {
	assert := assert.New(t)

	emu := New(console.NewScript(""))

	err := emu.LoadImageFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestLoadImageFileTruncated(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "short.obj")
	assert.NoError(os.WriteFile(path, []byte{0x30}, 0o644))

	emu := New(console.NewScript(""))
	assert.ErrorIs(emu.LoadImageFile(path), cpu.ErrImageTruncated)
}
