package cpu

import (
	"fmt"
	"strings"
)

// Handler executes an instruction against the machine state, given the
// operand bytes that followed the opcode. A handler owns the update of PC.
type Handler func(cpu *Cpu, operands []uint8) error

// Instruction describes one member of the instruction set.
type Instruction struct {
	Code     Code
	Mnemonic string
	Args     string // One letter per operand byte: 'r' register, 'i' immediate.
	Exec     Handler
}

// Operands returns the number of operand bytes following the opcode.
func (inst *Instruction) Operands() int {
	return len(inst.Args)
}

// Format renders the instruction with its operands in assembler syntax.
func (inst *Instruction) Format(operands []uint8) string {
	args := make([]string, 0, len(operands))
	for n, value := range operands {
		if n < len(inst.Args) && inst.Args[n] == 'r' {
			args = append(args, fmt.Sprintf("R%d", value))
		} else {
			args = append(args, fmt.Sprintf("0x%02x", value))
		}
	}

	if len(args) == 0 {
		return inst.Mnemonic
	}

	return inst.Mnemonic + " " + strings.Join(args, ",")
}

var instructions = []Instruction{
	{OP_HLT, "HLT", "", execHlt},
	{OP_LDI, "LDI", "ri", execLdi},
	{OP_MUL, "MUL", "rr", execMul},
	{OP_ADD, "ADD", "rr", execAdd},
	{OP_PRN, "PRN", "r", execPrn},
	{OP_PRA, "PRA", "r", execPra},
	{OP_PUSH, "PUSH", "r", execPush},
	{OP_POP, "POP", "r", execPop},
	{OP_CALL, "CALL", "r", execCall},
	{OP_RET, "RET", "", execRet},
	{OP_JMP, "JMP", "r", execJmp},
	{OP_ST, "ST", "rr", execSt},
	{OP_LD, "LD", "rr", execLd},
	{OP_IRET, "IRET", "", execIret},
}

// dispatch is indexed directly by opcode byte; nil is an illegal opcode.
var dispatch [256]*Instruction

func init() {
	for n := range instructions {
		inst := &instructions[n]
		dispatch[inst.Code] = inst
	}
}

// Instructions returns the instruction set, in no particular order.
func Instructions() []Instruction {
	return instructions
}

// advance moves PC past the opcode and its operands.
func (cpu *Cpu) advance(operands []uint8) {
	cpu.Pc += uint16(1 + len(operands))
}

func execHlt(cpu *Cpu, _ []uint8) (err error) {
	cpu.halted = true
	return
}

func execLdi(cpu *Cpu, ops []uint8) (err error) {
	err = cpu.Register.Set(int(ops[0]), int(ops[1]))
	if err != nil {
		return
	}
	cpu.advance(ops)
	return
}

func execMul(cpu *Cpu, ops []uint8) (err error) {
	err = cpu.Alu(ALU_OP_MUL, int(ops[0]), int(ops[1]))
	if err != nil {
		return
	}
	cpu.advance(ops)
	return
}

func execAdd(cpu *Cpu, ops []uint8) (err error) {
	err = cpu.Alu(ALU_OP_ADD, int(ops[0]), int(ops[1]))
	if err != nil {
		return
	}
	cpu.advance(ops)
	return
}

func execPrn(cpu *Cpu, ops []uint8) (err error) {
	value, err := cpu.Register.Get(int(ops[0]))
	if err != nil {
		return
	}
	if cpu.Console != nil {
		err = cpu.Console.PrintNumber(value)
		if err != nil {
			return
		}
	}
	cpu.advance(ops)
	return
}

func execPra(cpu *Cpu, ops []uint8) (err error) {
	value, err := cpu.Register.Get(int(ops[0]))
	if err != nil {
		return
	}
	if cpu.Console != nil {
		err = cpu.Console.PrintChar(value)
		if err != nil {
			return
		}
	}
	cpu.advance(ops)
	return
}

func execPush(cpu *Cpu, ops []uint8) (err error) {
	reg := int(ops[0])
	if reg >= REGISTER_COUNT {
		err = ErrRegister(reg)
		return
	}
	err = cpu.pushRegister(reg)
	if err != nil {
		return
	}
	cpu.advance(ops)
	return
}

func execPop(cpu *Cpu, ops []uint8) (err error) {
	reg := int(ops[0])
	if reg >= REGISTER_COUNT {
		err = ErrRegister(reg)
		return
	}
	err = cpu.popRegister(reg)
	if err != nil {
		return
	}
	cpu.advance(ops)
	return
}

func execCall(cpu *Cpu, ops []uint8) (err error) {
	reg := int(ops[0])
	if reg >= REGISTER_COUNT {
		err = ErrRegister(reg)
		return
	}
	err = cpu.pushAddress(cpu.Pc + 2)
	if err != nil {
		return
	}
	cpu.Pc = uint16(cpu.Register[reg])
	return
}

func execRet(cpu *Cpu, _ []uint8) (err error) {
	addr, err := cpu.popAddress()
	if err != nil {
		return
	}
	cpu.Pc = addr
	return
}

func execJmp(cpu *Cpu, ops []uint8) (err error) {
	value, err := cpu.Register.Get(int(ops[0]))
	if err != nil {
		return
	}
	cpu.Pc = uint16(value)
	return
}

func execSt(cpu *Cpu, ops []uint8) (err error) {
	addr, err := cpu.Register.Get(int(ops[0]))
	if err != nil {
		return
	}
	value, err := cpu.Register.Get(int(ops[1]))
	if err != nil {
		return
	}
	err = cpu.Memory.Write(uint16(addr), value)
	if err != nil {
		return
	}
	cpu.advance(ops)
	return
}

func execLd(cpu *Cpu, ops []uint8) (err error) {
	reg := int(ops[0])
	if reg >= REGISTER_COUNT {
		err = ErrRegister(reg)
		return
	}
	addr, err := cpu.Register.Get(int(ops[1]))
	if err != nil {
		return
	}
	value, err := cpu.Memory.Read(uint16(addr))
	if err != nil {
		return
	}
	cpu.Register[reg] = value
	cpu.advance(ops)
	return
}

// execIret restores R7 through R0, then PC, reversing interrupt delivery.
func execIret(cpu *Cpu, _ []uint8) (err error) {
	for n := REGISTER_COUNT - 1; n >= 0; n-- {
		err = cpu.popRegister(n)
		if err != nil {
			return
		}
	}

	addr, err := cpu.popAddress()
	if err != nil {
		return
	}

	cpu.Pc = addr
	cpu.InterruptsEnabled = true
	return
}
