package cpu

// dispatch routes a decoded opcode to its handler. The RES and RTI slots
// are nil: fetching either is a fatal bad-opcode condition.
var dispatch = [16]func(*Cpu, Instruction) error{
	OP_BR:   (*Cpu).opBr,
	OP_ADD:  (*Cpu).opAdd,
	OP_LD:   (*Cpu).opLd,
	OP_ST:   (*Cpu).opSt,
	OP_JSR:  (*Cpu).opJsr,
	OP_AND:  (*Cpu).opAnd,
	OP_LDR:  (*Cpu).opLdr,
	OP_STR:  (*Cpu).opStr,
	OP_NOT:  (*Cpu).opNot,
	OP_LDI:  (*Cpu).opLdi,
	OP_STI:  (*Cpu).opSti,
	OP_JMP:  (*Cpu).opJmp,
	OP_LEA:  (*Cpu).opLea,
	OP_TRAP: (*Cpu).opTrap,
}

// opAdd adds SR1 and either a register or a sign-extended 5-bit
// immediate. 16-bit wraparound, no overflow trap.
func (cpu *Cpu) opAdd(code Instruction) error {
	dr := code.DR()

	if code.ImmMode() {
		cpu.Reg[dr] = cpu.Reg[code.SR1()] + code.Imm5()
	} else {
		cpu.Reg[dr] = cpu.Reg[code.SR1()] + cpu.Reg[code.SR2()]
	}
	cpu.updateFlags(dr)

	return nil
}

// opAnd has the same operand forms as ADD.
func (cpu *Cpu) opAnd(code Instruction) error {
	dr := code.DR()

	if code.ImmMode() {
		cpu.Reg[dr] = cpu.Reg[code.SR1()] & code.Imm5()
	} else {
		cpu.Reg[dr] = cpu.Reg[code.SR1()] & cpu.Reg[code.SR2()]
	}
	cpu.updateFlags(dr)

	return nil
}

func (cpu *Cpu) opNot(code Instruction) error {
	dr := code.DR()

	cpu.Reg[dr] = ^cpu.Reg[code.SR1()]
	cpu.updateFlags(dr)

	return nil
}

// opBr branches when the condition mask intersects the current flag.
// Never touches the flags.
func (cpu *Cpu) opBr(code Instruction) error {
	if code.NZP()&cpu.Cond != 0 {
		cpu.PC += code.PCOffset9()
	}

	return nil
}

func (cpu *Cpu) opJmp(code Instruction) error {
	cpu.PC = cpu.Reg[code.SR1()]

	return nil
}

// opJsr saves the already-incremented PC in R7, then jumps PC-relative
// (JSR) or through a base register (JSRR).
func (cpu *Cpu) opJsr(code Instruction) error {
	cpu.Reg[R7] = cpu.PC

	if code.LongFlag() {
		cpu.PC += code.PCOffset11()
	} else {
		cpu.PC = cpu.Reg[code.SR1()]
	}

	return nil
}

func (cpu *Cpu) opLd(code Instruction) error {
	dr := code.DR()

	cpu.Reg[dr] = cpu.Mem.Read(cpu.PC + code.PCOffset9())
	cpu.updateFlags(dr)

	return nil
}

// opLdi loads through a pointer cell: the PC-relative cell holds the
// address of the value.
func (cpu *Cpu) opLdi(code Instruction) error {
	dr := code.DR()

	cpu.Reg[dr] = cpu.Mem.Read(cpu.Mem.Read(cpu.PC + code.PCOffset9()))
	cpu.updateFlags(dr)

	return nil
}

func (cpu *Cpu) opLdr(code Instruction) error {
	dr := code.DR()

	cpu.Reg[dr] = cpu.Mem.Read(cpu.Reg[code.SR1()] + code.Offset6())
	cpu.updateFlags(dr)

	return nil
}

// opLea loads the effective address itself, without a memory access.
func (cpu *Cpu) opLea(code Instruction) error {
	dr := code.DR()

	cpu.Reg[dr] = cpu.PC + code.PCOffset9()
	cpu.updateFlags(dr)

	return nil
}

func (cpu *Cpu) opSt(code Instruction) error {
	cpu.Mem.Write(cpu.PC+code.PCOffset9(), cpu.Reg[code.DR()])

	return nil
}

func (cpu *Cpu) opSti(code Instruction) error {
	cpu.Mem.Write(cpu.Mem.Read(cpu.PC+code.PCOffset9()), cpu.Reg[code.DR()])

	return nil
}

func (cpu *Cpu) opStr(code Instruction) error {
	cpu.Mem.Write(cpu.Reg[code.SR1()]+code.Offset6(), cpu.Reg[code.DR()])

	return nil
}
