// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/memory"
	"github.com/ezrec/ls8/translate"
)

const (
	MEMORY_SIZE = memory.SIZE // Bytes of main memory.
)

var _emulator_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// Emulator state. CPU + RAM + console and ROM image.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Ram     memory.Ram // Main memory.
	Console io.Console // Console output port.
	Rom     io.Rom     // Boot image, loaded at address 0 on reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Ram)
	emu.Cpu.Console = &emu.Console

	return
}

// Defines returns an iterator over all of the defines. Emulator defines
// take precedence over processor defines of the same name.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.MergeSeq2(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Reset the machine. An assembled program, if any, replaces the ROM image.
// Memory is cleared, the image loaded at address 0, and the CPU reset.
func (emu *Emulator) Reset() (err error) {
	if emu.Program != nil && len(emu.Program.Opcodes) != 0 {
		emu.Rom.Data = emu.Program.Binary()
	}

	if emu.Verbose {
		translate.Logf("emulator: reset, %d byte image", len(emu.Rom.Data))
	}

	emu.Ram.Reset()

	err = emu.Rom.Load(&emu.Ram)
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	return
}

// Ticks returns the total instruction cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing opcode, or 0
// if the program counter is not within the assembled program.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Disassemble renders the instruction at the program counter.
func (emu *Emulator) Disassemble() (text string, err error) {
	text, _, err = cpu.Disassemble(&emu.Ram, emu.Cpu.Pc)
	return
}

// Tick performs a single tick of the emulator. It returns done once the
// machine has halted, either by HLT or by a fault.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu.Halted() {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	// A faulting cycle leaves PC at the failed instruction, which is
	// inside the handler if an interrupt was delivered first.
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: emu.LineNo(), Address: emu.Cpu.Pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	done = emu.Cpu.Halted()

	return
}
