package cpu

import (
	"fmt"

	"github.com/ezrec/ls8/translate"
)

// Memory is the main memory capability consumed by the CPU.
type Memory interface {
	Read(addr uint16) (value uint8, err error)
	Write(addr uint16, value uint8) (err error)
}

// Console is the character output port.
type Console interface {
	// PrintNumber emits the decimal value and a line terminator.
	PrintNumber(value uint8) error
	// PrintChar emits the character with the given code.
	PrintChar(value uint8) error
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory  Memory  // Main memory.
	Console Console // Output port, may be nil.

	Register          RegisterFile // Register bank.
	Pc                uint16       // Program counter.
	Ir                Code         // Instruction register.
	InterruptsEnabled bool         // Interrupt delivery enabled.
	Overflow          bool         // Set by MUL when the product exceeds a byte.

	Ticks int // Completed instruction cycles.

	halted   bool
	operands [2]uint8
}

// NewCpu creates a new CPU attached to memory, in its reset state.
func NewCpu(mem Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: mem,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers and flags.
// - Sets SP to the top of the stack.
// - Sets PC to 0.
// - Enables interrupts.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		translate.Logf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[REG_SP] = SP_INIT
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.InterruptsEnabled = true
	cpu.Overflow = false
	cpu.Ticks = 0
	cpu.halted = false
}

// Halted returns true once the machine has stopped, either by HLT or by a
// fault. There is no way out of the halted state but Reset.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir",
		"r0", "r1", "r2", "r3", "r4", "im", "is", "sp",
		"ie", "ov",
	}
	for n, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%02X %v", uint8(cpu.Ir), cpu.Ir)
		case "ie":
			strval = fmt.Sprintf("%v", cpu.InterruptsEnabled)
		case "ov":
			strval = fmt.Sprintf("%v", cpu.Overflow)
		default:
			val := cpu.Register[n-2]
			strval = fmt.Sprintf("%02X %08b", val, val)
		}
		text += fmt.Sprintf("% 3s: %v\n", reg, strval)
	}

	return
}

// fetchOperands reads the operand bytes following the opcode at PC.
func (cpu *Cpu) fetchOperands(count int) (operands []uint8, err error) {
	operands = cpu.operands[:count]
	for n := range operands {
		operands[n], err = cpu.Memory.Read(cpu.Pc + 1 + uint16(n))
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single instruction cycle. Any error is fatal: the CPU
// halts, and all further ticks return ErrHalted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.halted {
		err = ErrHalted
		return
	}

	defer func() {
		if err != nil {
			cpu.halted = true
			if cpu.Verbose {
				translate.Logf("cpu: fault: %v", err)
			}
		}
	}()

	err = cpu.serviceInterrupt()
	if err != nil {
		return
	}

	code, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}
	cpu.Ir = Code(code)

	inst := dispatch[cpu.Ir]
	if inst == nil {
		err = ErrOpcode{Address: cpu.Pc, Code: cpu.Ir}
		return
	}

	pc := cpu.Pc

	operands, err := cpu.fetchOperands(inst.Operands())
	if err != nil {
		err = &ErrInstruction{Address: pc, Code: cpu.Ir, Err: err}
		return
	}

	if cpu.Verbose {
		translate.Logf("%02x: %v", pc, inst.Format(operands))
	}

	err = inst.Exec(cpu, operands)
	if err != nil {
		err = &ErrInstruction{Address: pc, Code: cpu.Ir, Err: err}
		return
	}

	cpu.Ticks++

	return
}
