// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	goio "io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ezrec/ls8/clock"
	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

// defineList collects repeated -D NAME=VALUE flags.
type defineList map[string]string

func (dl defineList) String() string {
	var defs []string
	for key, value := range dl {
		defs = append(defs, key+"="+value)
	}
	return strings.Join(defs, ",")
}

func (dl defineList) Set(text string) error {
	key, value, ok := strings.Cut(text, "=")
	if !ok || len(key) == 0 {
		return fmt.Errorf("%q is not NAME=VALUE", text)
	}
	dl[key] = value
	return nil
}

// listing writes the assembled program, one source line per opcode.
func listing(w goio.Writer, prog *cpu.Program) {
	for _, op := range prog.Opcodes {
		var hex []string
		for _, value := range op.Bytes {
			hex = append(hex, fmt.Sprintf("%02x", value))
		}
		fmt.Fprintf(w, "%02x: %-9s %4d: %v\n", op.Address, strings.Join(hex, " "), op.LineNo, strings.Join(op.Words, " "))
	}
}

// comments annotates an image with the disassembly at each instruction.
func comments(emu *emulator.Emulator) func(addr uint16) string {
	next := uint16(0)
	return func(addr uint16) (text string) {
		if addr != next {
			return
		}
		text, size, err := cpu.Disassemble(&emu.Ram, addr)
		if err != nil {
			text = ""
			size = 1
		}
		next = addr + uint16(size)
		return
	}
}

func main() {
	var compile string
	var image string
	var save bool
	var output string
	var list bool
	var verbose bool
	defines := defineList{}

	clk := &clock.Clock{TimerLine: cpu.INTERRUPT_TIMER}

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.StringVar(&image, "i", "", ".ls8 image file to load")
	flag.BoolVar(&save, "s", false, "Save image to output, do not execute")
	flag.StringVar(&output, "o", "-", "Console output, or image output with -s")
	flag.BoolVar(&list, "l", false, "Write the assembler listing to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.DurationVar(&clk.Cycle, "cycle", clock.DEFAULT_CYCLE, "Instruction cycle period")
	flag.DurationVar(&clk.Timer, "timer", clock.DEFAULT_TIMER, "Timer interrupt period, 0 to disable")
	flag.Var(defines, "D", "Assembler define NAME=VALUE (repeatable)")

	flag.Parse()

	log.SetPrefix("ls8: ")
	log.SetFlags(0)

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(image) != 0 {
		log.Fatalf("%v: -c and -i are exclusive", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	clk.Verbose = verbose

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		for key, value := range defines {
			asm.Predefine(key, value)
		}

		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if list {
			listing(os.Stderr, emu.Program)
		}
	}

	// Load a binary image.
	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		err = emu.Rom.Unmarshal(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	var ouf goio.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	if save {
		err = emu.Rom.Marshal(ouf, comments(emu))
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu.Console.Output = ouf

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = clk.Run(ctx, emu)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		log.Print(err)
	}

	if verbose {
		log.Printf("%d ticks, %d reads, %d writes", emu.Ticks(), emu.Ram.Reads, emu.Ram.Writes)
		log.Print(emu.Cpu.String())
	}

	if err != nil {
		stop()
		os.Exit(1)
	}
}
