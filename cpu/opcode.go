package cpu

import (
	"fmt"
)

// Code is an instruction opcode byte.
type Code uint8

// Instruction opcodes.
const (
	OP_HLT  = Code(0b0000_0001)
	OP_RET  = Code(0b0001_0001)
	OP_IRET = Code(0b0001_0011)
	OP_PUSH = Code(0b0100_0101)
	OP_POP  = Code(0b0100_0110)
	OP_PRN  = Code(0b0100_0111)
	OP_PRA  = Code(0b0100_1000)
	OP_CALL = Code(0b0101_0000)
	OP_JMP  = Code(0b0101_0100)
	OP_LDI  = Code(0b1000_0010)
	OP_LD   = Code(0b1000_0011)
	OP_ST   = Code(0b1000_0100)
	OP_ADD  = Code(0b1010_0000)
	OP_MUL  = Code(0b1010_0010)
)

// Register conventions.
const (
	REG_IM = 5 // Interrupt mask.
	REG_IS = 6 // Interrupt status.
	REG_SP = 7 // Stack pointer.

	REGISTER_COUNT = 8
)

// Memory map and interrupt conventions.
const (
	SP_INIT         = 0xf8 // Initial stack pointer.
	VECTOR_BASE     = 0xf8 // Interrupt vector table, one entry per line.
	INTERRUPT_LINES = 8
	INTERRUPT_TIMER = 1 // Line raised by the periodic timer.
)

// Instruction returns the dispatch entry for the opcode, or nil if the
// opcode is not part of the instruction set.
func (code Code) Instruction() *Instruction {
	return dispatch[code]
}

// String returns the mnemonic of the opcode.
func (code Code) String() string {
	inst := dispatch[code]
	if inst == nil {
		return fmt.Sprintf("0x%02x", uint8(code))
	}

	return inst.Mnemonic
}
