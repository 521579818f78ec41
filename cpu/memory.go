package cpu

// Memory size and memory-mapped device addresses.
const (
	MEMORY_SIZE = 1 << 16

	MR_KBSR = uint16(0xfe00) // Keyboard status register.
	MR_KBDR = uint16(0xfe02) // Keyboard data register.

	KBSR_READY = uint16(1 << 15) // Status bit: a key is latched in MR_KBDR.
)

// Keyboard is the device polled through the memory-mapped status register.
type Keyboard interface {
	// Poll returns a pending key, if any, without blocking.
	Poll() (key byte, ok bool)
}

// Memory is the 65536-word store of one execution run. Address arithmetic
// is uint16 throughout, so every access wraps modulo the address space and
// no address is invalid.
//
// Reads of MR_KBSR first poll the keyboard and refresh the status/data
// register pair; reads of MR_KBDR consume the latched key. All other cells
// are plain storage.
type Memory struct {
	// Keyboard is the device latched into MR_KBSR/MR_KBDR. May be nil,
	// in which case the status register always reads not-ready.
	Keyboard Keyboard

	cells [MEMORY_SIZE]uint16
}

// Read returns the value at addr, polling the keyboard device when the
// status register is read.
func (mem *Memory) Read(addr uint16) (value uint16) {
	switch addr {
	case MR_KBSR:
		mem.pollKeyboard()
	case MR_KBDR:
		defer func() { mem.cells[MR_KBSR] &^= KBSR_READY }()
	}

	return mem.cells[addr]
}

// Write stores value at addr. Writes have no device side effects.
func (mem *Memory) Write(addr, value uint16) {
	mem.cells[addr] = value
}

// pollKeyboard latches the next pending key into the status/data pair.
// A key already latched and not yet consumed is left in place.
func (mem *Memory) pollKeyboard() {
	if mem.cells[MR_KBSR]&KBSR_READY != 0 {
		return
	}

	if mem.Keyboard == nil {
		mem.cells[MR_KBSR] = 0
		return
	}

	key, ok := mem.Keyboard.Poll()
	if !ok {
		mem.cells[MR_KBSR] = 0
		return
	}

	mem.cells[MR_KBSR] = KBSR_READY
	mem.cells[MR_KBDR] = uint16(key)
}
