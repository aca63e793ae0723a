package cpu

import (
	"fmt"
)

// Disassemble renders the instruction at addr. Bytes that are not an opcode
// are rendered as a .byte directive of size 1.
func Disassemble(mem Memory, addr uint16) (text string, size int, err error) {
	value, err := mem.Read(addr)
	if err != nil {
		return
	}

	inst := Code(value).Instruction()
	if inst == nil {
		text = fmt.Sprintf(".byte 0x%02x", value)
		size = 1
		return
	}

	operands := make([]uint8, inst.Operands())
	for n := range operands {
		operands[n], err = mem.Read(addr + 1 + uint16(n))
		if err != nil {
			return
		}
	}

	text = inst.Format(operands)
	size = 1 + len(operands)
	return
}
