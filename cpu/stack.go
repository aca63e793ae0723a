package cpu

import (
	"github.com/ezrec/ls8/memory"
)

// The stack lives in main memory, addressed by SP (R7). It grows
// downwards: push pre-decrements, pop post-increments.

// pushRegister pushes a register. SP is decremented before the register is
// read, so pushing SP itself stores the decremented value.
func (cpu *Cpu) pushRegister(index int) (err error) {
	cpu.Register[REG_SP]--
	err = cpu.Memory.Write(uint16(cpu.Register[REG_SP]), cpu.Register[index])
	return
}

// pushAddress pushes a return address, which must fit in a byte.
func (cpu *Cpu) pushAddress(addr uint16) (err error) {
	if addr > 0xff {
		err = memory.ErrAddress(addr)
		return
	}

	cpu.Register[REG_SP]--
	err = cpu.Memory.Write(uint16(cpu.Register[REG_SP]), uint8(addr))
	return
}

// popRegister pops into a register. The register is written before SP is
// incremented, so popping into SP yields the popped value plus one.
func (cpu *Cpu) popRegister(index int) (err error) {
	value, err := cpu.Memory.Read(uint16(cpu.Register[REG_SP]))
	if err != nil {
		return
	}

	cpu.Register[index] = value
	cpu.Register[REG_SP]++
	return
}

// popAddress pops a return address.
func (cpu *Cpu) popAddress() (addr uint16, err error) {
	value, err := cpu.Memory.Read(uint16(cpu.Register[REG_SP]))
	if err != nil {
		return
	}

	cpu.Register[REG_SP]++
	addr = uint16(value)
	return
}
