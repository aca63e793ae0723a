package cpu

import (
	"math/bits"

	"github.com/ezrec/ls8/translate"
)

// Pending returns the interrupt lines that are both raised and unmasked.
func (cpu *Cpu) Pending() uint8 {
	return cpu.Register[REG_IS] & cpu.Register[REG_IM]
}

// RaiseInterrupt marks an interrupt line as pending in IS. A halted CPU
// ignores the request and returns ErrHalted.
func (cpu *Cpu) RaiseInterrupt(line int) (err error) {
	if cpu.halted {
		err = ErrHalted
		return
	}

	if line < 0 || line >= INTERRUPT_LINES {
		err = ErrInterruptInvalid
		return
	}

	cpu.Register[REG_IS] |= 1 << line
	return
}

// serviceInterrupt delivers at most one pending interrupt, lowest line
// first. The context pushed is PC, then R0 through R7. Delivery disables
// further interrupts until IRET.
func (cpu *Cpu) serviceInterrupt() (err error) {
	if !cpu.InterruptsEnabled {
		return
	}

	pending := cpu.Pending()
	if pending == 0 {
		return
	}

	line := bits.TrailingZeros8(pending)

	cpu.InterruptsEnabled = false
	cpu.Register[REG_IS] &^= 1 << line

	if cpu.Verbose {
		translate.Logf("cpu: interrupt %d at 0x%02x", line, cpu.Pc)
	}

	err = cpu.pushAddress(cpu.Pc)
	if err != nil {
		return
	}

	for n := range REGISTER_COUNT {
		err = cpu.pushRegister(n)
		if err != nil {
			return
		}
	}

	vector, err := cpu.Memory.Read(uint16(VECTOR_BASE + line))
	if err != nil {
		return
	}

	cpu.Pc = uint16(vector)
	return
}
