// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of a program counter (PC), an instruction register (IR),
// eight 8-bit general-purpose registers (R0-R7), an ALU, and an interrupt
// controller. By convention R5 is the interrupt mask (IM), R6 the interrupt
// status (IS), and R7 the stack pointer (SP). The stack lives in main memory
// and grows downwards from 0xF8, which is also the base of the interrupt
// vector table.
//
// Each call to Cpu.Tick runs exactly one instruction cycle: interrupt check,
// fetch, dispatch, execute. Interrupts are only delivered at the cycle
// boundary, so every instruction executes atomically with respect to them.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting macros, labels, equates, and compile-time expression
// evaluation.
package cpu
