package clock

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

type fakeMachine struct {
	ticks  int
	halt   int // Halt after this many ticks, if non-zero.
	fault  int // Fail on this tick, if non-zero.
	lines  []int
	stopOn bool // Halt on the first tick after an interrupt.
}

var errFake = errors.New("fake fault")

func (fm *fakeMachine) Tick() (done bool, err error) {
	fm.ticks++
	if fm.fault != 0 && fm.ticks == fm.fault {
		err = errFake
		done = true
		return
	}
	if fm.halt != 0 && fm.ticks >= fm.halt {
		done = true
	}
	if fm.stopOn && len(fm.lines) > 0 {
		done = true
	}
	return
}

func (fm *fakeMachine) RaiseInterrupt(line int) (err error) {
	if line < 0 || line >= cpu.INTERRUPT_LINES {
		err = cpu.ErrInterruptInvalid
		return
	}
	fm.lines = append(fm.lines, line)
	return
}

func TestClock_Halt(t *testing.T) {
	assert := assert.New(t)

	fm := &fakeMachine{halt: 100}
	clk := &Clock{}

	err := clk.Run(context.Background(), fm)
	assert.NoError(err)
	assert.Equal(100, fm.ticks)
	assert.Empty(fm.lines)
}

func TestClock_Fault(t *testing.T) {
	assert := assert.New(t)

	fm := &fakeMachine{fault: 3}
	clk := &Clock{Cycle: time.Millisecond}

	err := clk.Run(context.Background(), fm)
	assert.Equal(errFake, err)
	assert.Equal(3, fm.ticks)
}

func TestClock_Cancel(t *testing.T) {
	assert := assert.New(t)

	fm := &fakeMachine{}
	clk := &Clock{Cycle: time.Millisecond, Timer: time.Hour}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := clk.Run(ctx, fm)
	assert.True(errors.Is(err, context.DeadlineExceeded))
	assert.Greater(fm.ticks, 0)
	assert.Empty(fm.lines)
}

func TestClock_Timer(t *testing.T) {
	assert := assert.New(t)

	fm := &fakeMachine{stopOn: true}
	clk := &Clock{Timer: time.Millisecond, TimerLine: 3}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := clk.Run(ctx, fm)
	assert.NoError(err)
	if assert.NotEmpty(fm.lines) {
		assert.Equal(3, fm.lines[0])
	}
}

func TestClock_TimerLineInvalid(t *testing.T) {
	assert := assert.New(t)

	fm := &fakeMachine{}
	clk := &Clock{Timer: time.Millisecond, TimerLine: cpu.INTERRUPT_LINES}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := clk.Run(ctx, fm)
	assert.Equal(cpu.ErrInterruptInvalid, err)
}

func TestClock_Emulator(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		"    LDI IM,$(1 << INTERRUPT_TIMER)",
		"loop:",
		"    LDI R1,loop",
		"    JMP R1",
		".org 0x40",
		"timer:",
		"    LDI R0,'!'",
		"    PRA R0",
		"    HLT",
		".org $(VECTOR_BASE + INTERRUPT_TIMER)",
		".byte timer",
	}, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	emu.Program = prog
	assert.NoError(emu.Reset())

	output := &bytes.Buffer{}
	emu.Console.Output = output

	clk := &Clock{
		Cycle:     time.Microsecond,
		Timer:     5 * time.Millisecond,
		TimerLine: cpu.INTERRUPT_TIMER,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = clk.Run(ctx, emu)
	assert.NoError(err)
	assert.Equal("!", output.String())
	assert.True(emu.Cpu.Halted())
}
