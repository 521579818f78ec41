package cpu

import (
	"fmt"
)

// Opcode is the top 4 bits of an instruction word.
type Opcode uint16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0)  // BR
	OP_ADD  = Opcode(1)  // ADD
	OP_LD   = Opcode(2)  // LD
	OP_ST   = Opcode(3)  // ST
	OP_JSR  = Opcode(4)  // JSR
	OP_AND  = Opcode(5)  // AND
	OP_LDR  = Opcode(6)  // LDR
	OP_STR  = Opcode(7)  // STR
	OP_RTI  = Opcode(8)  // RTI
	OP_NOT  = Opcode(9)  // NOT
	OP_LDI  = Opcode(10) // LDI
	OP_STI  = Opcode(11) // STI
	OP_JMP  = Opcode(12) // JMP
	OP_RES  = Opcode(13) // RES
	OP_LEA  = Opcode(14) // LEA
	OP_TRAP = Opcode(15) // TRAP
)

// TrapVector is the 8-bit trap routine selector of a TRAP instruction.
type TrapVector uint16

//go:generate go tool stringer -linecomment -type=TrapVector
const (
	TRAP_GETC  = TrapVector(0x20) // GETC
	TRAP_OUT   = TrapVector(0x21) // OUT
	TRAP_PUTS  = TrapVector(0x22) // PUTS
	TRAP_IN    = TrapVector(0x23) // IN
	TRAP_PUTSP = TrapVector(0x24) // PUTSP
	TRAP_HALT  = TrapVector(0x25) // HALT
)

// Flag is the condition flag register value. Exactly one flag is set after
// any flag-setting instruction.
type Flag uint16

const (
	FL_POS = Flag(1 << 0) // P
	FL_ZRO = Flag(1 << 1) // Z
	FL_NEG = Flag(1 << 2) // N
)

// String returns the conventional single-letter flag name.
func (fl Flag) String() string {
	switch fl {
	case FL_POS:
		return "P"
	case FL_ZRO:
		return "Z"
	case FL_NEG:
		return "N"
	}

	return fmt.Sprintf("Flag(%d)", uint16(fl))
}

// signExtend widens the low bits of an n-bit two's-complement field to
// 16 bits.
func signExtend(x uint16, bits uint) uint16 {
	if (x>>(bits-1))&1 != 0 {
		x |= 0xffff << bits
	}

	return x
}

// Instruction is a single 16-bit LC-3 instruction word.
type Instruction uint16

// Opcode returns bits [15:12].
func (code Instruction) Opcode() Opcode {
	return Opcode(code >> 12)
}

// DR returns the destination register field, bits [11:9]. The same field
// holds the source register of ST/STI/STR and the nzp mask of BR.
func (code Instruction) DR() int {
	return int((code >> 9) & 0x7)
}

// SR1 returns the first source register field, bits [8:6]. The same field
// holds the base register of JMP/JSRR/LDR/STR.
func (code Instruction) SR1() int {
	return int((code >> 6) & 0x7)
}

// SR2 returns the second source register field, bits [2:0].
func (code Instruction) SR2() int {
	return int(code & 0x7)
}

// ImmMode reports whether bit [5] selects the immediate operand form.
func (code Instruction) ImmMode() bool {
	return (code>>5)&1 != 0
}

// LongFlag reports whether bit [11] selects the PC-relative form of JSR.
func (code Instruction) LongFlag() bool {
	return (code>>11)&1 != 0
}

// NZP returns the branch condition mask, bits [11:9].
func (code Instruction) NZP() Flag {
	return Flag((code >> 9) & 0x7)
}

// Imm5 returns the sign-extended 5-bit immediate, bits [4:0].
func (code Instruction) Imm5() uint16 {
	return signExtend(uint16(code)&0x1f, 5)
}

// Offset6 returns the sign-extended 6-bit base offset, bits [5:0].
func (code Instruction) Offset6() uint16 {
	return signExtend(uint16(code)&0x3f, 6)
}

// PCOffset9 returns the sign-extended 9-bit PC-relative offset, bits [8:0].
func (code Instruction) PCOffset9() uint16 {
	return signExtend(uint16(code)&0x1ff, 9)
}

// PCOffset11 returns the sign-extended 11-bit PC-relative offset, bits [10:0].
func (code Instruction) PCOffset11() uint16 {
	return signExtend(uint16(code)&0x7ff, 11)
}

// Trap returns the zero-extended 8-bit trap vector, bits [7:0].
func (code Instruction) Trap() TrapVector {
	return TrapVector(code & 0xff)
}

func makeOp(op Opcode, bits uint16) Instruction {
	return Instruction(uint16(op)<<12 | bits)
}

func reg(r int) uint16 {
	return uint16(r) & 0x7
}

// MakeAdd creates a register-mode ADD instruction.
func MakeAdd(dr, sr1, sr2 int) Instruction {
	return makeOp(OP_ADD, reg(dr)<<9|reg(sr1)<<6|reg(sr2))
}

// MakeAddImm creates an immediate-mode ADD instruction.
func MakeAddImm(dr, sr1, imm int) Instruction {
	return makeOp(OP_ADD, reg(dr)<<9|reg(sr1)<<6|1<<5|uint16(imm)&0x1f)
}

// MakeAnd creates a register-mode AND instruction.
func MakeAnd(dr, sr1, sr2 int) Instruction {
	return makeOp(OP_AND, reg(dr)<<9|reg(sr1)<<6|reg(sr2))
}

// MakeAndImm creates an immediate-mode AND instruction.
func MakeAndImm(dr, sr1, imm int) Instruction {
	return makeOp(OP_AND, reg(dr)<<9|reg(sr1)<<6|1<<5|uint16(imm)&0x1f)
}

// MakeNot creates a NOT instruction.
func MakeNot(dr, sr int) Instruction {
	return makeOp(OP_NOT, reg(dr)<<9|reg(sr)<<6|0x3f)
}

// MakeBr creates a BR instruction testing the given flags.
func MakeBr(n, z, p bool, offset int) Instruction {
	var nzp uint16
	if n {
		nzp |= uint16(FL_NEG)
	}
	if z {
		nzp |= uint16(FL_ZRO)
	}
	if p {
		nzp |= uint16(FL_POS)
	}

	return makeOp(OP_BR, nzp<<9|uint16(offset)&0x1ff)
}

// MakeJmp creates a JMP instruction through a base register.
func MakeJmp(base int) Instruction {
	return makeOp(OP_JMP, reg(base)<<6)
}

// MakeRet creates the conventional subroutine return, JMP through R7.
func MakeRet() Instruction {
	return MakeJmp(R7)
}

// MakeJsr creates a PC-relative JSR instruction.
func MakeJsr(offset int) Instruction {
	return makeOp(OP_JSR, 1<<11|uint16(offset)&0x7ff)
}

// MakeJsrr creates a register-mode JSRR instruction.
func MakeJsrr(base int) Instruction {
	return makeOp(OP_JSR, reg(base)<<6)
}

// MakeLd creates a LD instruction.
func MakeLd(dr, offset int) Instruction {
	return makeOp(OP_LD, reg(dr)<<9|uint16(offset)&0x1ff)
}

// MakeLdi creates a LDI instruction.
func MakeLdi(dr, offset int) Instruction {
	return makeOp(OP_LDI, reg(dr)<<9|uint16(offset)&0x1ff)
}

// MakeLdr creates a LDR instruction.
func MakeLdr(dr, base, offset int) Instruction {
	return makeOp(OP_LDR, reg(dr)<<9|reg(base)<<6|uint16(offset)&0x3f)
}

// MakeLea creates a LEA instruction.
func MakeLea(dr, offset int) Instruction {
	return makeOp(OP_LEA, reg(dr)<<9|uint16(offset)&0x1ff)
}

// MakeSt creates a ST instruction.
func MakeSt(sr, offset int) Instruction {
	return makeOp(OP_ST, reg(sr)<<9|uint16(offset)&0x1ff)
}

// MakeSti creates a STI instruction.
func MakeSti(sr, offset int) Instruction {
	return makeOp(OP_STI, reg(sr)<<9|uint16(offset)&0x1ff)
}

// MakeStr creates a STR instruction.
func MakeStr(sr, base, offset int) Instruction {
	return makeOp(OP_STR, reg(sr)<<9|reg(base)<<6|uint16(offset)&0x3f)
}

// MakeTrap creates a TRAP instruction.
func MakeTrap(vector TrapVector) Instruction {
	return makeOp(OP_TRAP, uint16(vector)&0xff)
}

// String returns the assembly language representation of the instruction,
// used by the verbose execution trace.
func (code Instruction) String() (out string) {
	op := code.Opcode()

	switch op {
	case OP_BR:
		var cc string
		if code.NZP()&FL_NEG != 0 {
			cc += "n"
		}
		if code.NZP()&FL_ZRO != 0 {
			cc += "z"
		}
		if code.NZP()&FL_POS != 0 {
			cc += "p"
		}
		out = fmt.Sprintf("BR%v #%d", cc, int16(code.PCOffset9()))
	case OP_ADD, OP_AND:
		if code.ImmMode() {
			out = fmt.Sprintf("%v r%d, r%d, #%d", op, code.DR(), code.SR1(), int16(code.Imm5()))
		} else {
			out = fmt.Sprintf("%v r%d, r%d, r%d", op, code.DR(), code.SR1(), code.SR2())
		}
	case OP_NOT:
		out = fmt.Sprintf("NOT r%d, r%d", code.DR(), code.SR1())
	case OP_JMP:
		if code.SR1() == R7 {
			out = "RET"
		} else {
			out = fmt.Sprintf("JMP r%d", code.SR1())
		}
	case OP_JSR:
		if code.LongFlag() {
			out = fmt.Sprintf("JSR #%d", int16(code.PCOffset11()))
		} else {
			out = fmt.Sprintf("JSRR r%d", code.SR1())
		}
	case OP_LD, OP_LDI, OP_LEA, OP_ST, OP_STI:
		out = fmt.Sprintf("%v r%d, #%d", op, code.DR(), int16(code.PCOffset9()))
	case OP_LDR, OP_STR:
		out = fmt.Sprintf("%v r%d, r%d, #%d", op, code.DR(), code.SR1(), int16(code.Offset6()))
	case OP_TRAP:
		out = fmt.Sprintf("TRAP %v", code.Trap())
	default:
		out = op.String()
	}

	return
}
