package cpu

// traps routes an 8-bit trap vector to its routine. Each routine runs
// synchronously to completion. A nil slot is a fatal bad-trap condition.
var traps = [256]func(*Cpu) error{
	TRAP_GETC:  (*Cpu).trapGetc,
	TRAP_OUT:   (*Cpu).trapOut,
	TRAP_PUTS:  (*Cpu).trapPuts,
	TRAP_IN:    (*Cpu).trapIn,
	TRAP_PUTSP: (*Cpu).trapPutsp,
	TRAP_HALT:  (*Cpu).trapHalt,
}

// opTrap saves the return address in R7, then dispatches through the trap
// routine table. The save happens before the routine runs, so a routine
// observing R7 sees its return address.
func (cpu *Cpu) opTrap(code Instruction) error {
	cpu.Reg[R7] = cpu.PC

	vector := code.Trap()
	handler := traps[vector]
	if handler == nil {
		cpu.Halted = true
		return &ErrBadTrap{Vector: vector, Addr: cpu.PC - 1}
	}

	return handler(cpu)
}

// trapGetc reads one raw key into R0, without echo. When the input source
// is exhausted the routine reports ErrNoInput and leaves R0 untouched;
// the condition is not fatal.
func (cpu *Cpu) trapGetc() (err error) {
	key, err := cpu.Console.ReadKey()
	if err != nil {
		return
	}

	cpu.Reg[R0] = uint16(key)
	cpu.updateFlags(R0)

	return
}

// trapOut writes the low byte of R0 to the display.
func (cpu *Cpu) trapOut() (err error) {
	_, err = cpu.Console.Write([]byte{byte(cpu.Reg[R0])})

	return
}

// trapPuts writes the string starting at the address in R0, one character
// per cell, up to the zero cell.
func (cpu *Cpu) trapPuts() (err error) {
	var out []byte
	for addr := cpu.Reg[R0]; ; addr++ {
		c := cpu.Mem.Read(addr)
		if c == 0 {
			break
		}
		out = append(out, byte(c))
	}

	_, err = cpu.Console.Write(out)

	return
}

// trapIn prompts, reads one key with echo, and stores it in R0. Like GETC,
// exhausted input is reported but not fatal.
func (cpu *Cpu) trapIn() (err error) {
	_, err = cpu.Console.Write([]byte("Enter a character: "))
	if err != nil {
		return
	}

	key, err := cpu.Console.ReadKey()
	if err != nil {
		return
	}

	_, err = cpu.Console.Write([]byte{key})
	if err != nil {
		return
	}

	cpu.Reg[R0] = uint16(key)
	cpu.updateFlags(R0)

	return
}

// trapPutsp writes the packed string starting at the address in R0, two
// characters per cell, low byte first, up to the zero cell. A cell with a
// zero high byte ends its own pair but not the string.
func (cpu *Cpu) trapPutsp() (err error) {
	var out []byte
	for addr := cpu.Reg[R0]; ; addr++ {
		word := cpu.Mem.Read(addr)
		if word == 0 {
			break
		}
		out = append(out, byte(word))
		if high := byte(word >> 8); high != 0 {
			out = append(out, high)
		}
	}

	_, err = cpu.Console.Write(out)

	return
}

// trapHalt emits the shutdown notice and halts the execution loop.
func (cpu *Cpu) trapHalt() (err error) {
	_, err = cpu.Console.Write([]byte("HALT\n"))
	cpu.Halted = true

	return
}
