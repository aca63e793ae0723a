package cpu

import (
	"iter"
)

// Link is a reference to a label, resolved into Bytes[Index] after assembly.
type Link struct {
	Index int
	Label string
}

// Opcode represents a line of assembled code with its source location and generated bytes.
type Opcode struct {
	LineNo  int
	Address int
	Words   []string
	Bytes   []uint8
	Links   []Link
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the source line that generated the byte at addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Address && int(addr) < op.Address+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Address,
			}
			break
		}
	}

	return
}

// Bytes iterates over every assembled byte and its address.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(uint16(op.Address+n), value) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image, from address 0 up to the highest
// assembled byte. Gaps left by .org are zero.
func (prog *Program) Binary() (bins []uint8) {
	for addr, value := range prog.Bytes() {
		for int(addr) >= len(bins) {
			bins = append(bins, 0)
		}
		bins[addr] = value
	}

	return
}
