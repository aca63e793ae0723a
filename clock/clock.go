// Package clock drives a machine in real time: one ticker triggers
// instruction cycles, a second raises the timer interrupt line.
package clock

import (
	"context"
	"time"

	"github.com/ezrec/ls8/translate"
)

const (
	DEFAULT_CYCLE = time.Millisecond // Default instruction cycle period.
	DEFAULT_TIMER = time.Second      // Default timer interrupt period.
)

// Machine is the part of the emulator driven by the clock.
type Machine interface {
	// Tick performs one instruction cycle; done is set once halted.
	Tick() (done bool, err error)
	// RaiseInterrupt marks an interrupt line as pending.
	RaiseInterrupt(line int) error
}

// Clock configuration.
type Clock struct {
	Verbose bool // If set, logs timer interrupts.

	Cycle     time.Duration // Cycle period; zero runs cycles back to back.
	Timer     time.Duration // Timer period; zero disables the timer.
	TimerLine int           // Interrupt line raised by the timer.
}

// always is a closed channel, ready on every select.
var always = func() chan time.Time {
	ch := make(chan time.Time)
	close(ch)
	return ch
}()

// Run ticks the machine until it halts, faults, or the context is done.
// Cycles and interrupt raises happen on the calling goroutine, so a raise
// is only ever observed at a cycle boundary.
func (clk *Clock) Run(ctx context.Context, machine Machine) (err error) {
	var cycle <-chan time.Time = always
	var timer <-chan time.Time

	if clk.Cycle > 0 {
		ticker := time.NewTicker(clk.Cycle)
		defer ticker.Stop()
		cycle = ticker.C
	}

	if clk.Timer > 0 {
		ticker := time.NewTicker(clk.Timer)
		defer ticker.Stop()
		timer = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-timer:
			if clk.Verbose {
				translate.Logf("clock: timer, line %d", clk.TimerLine)
			}
			err = machine.RaiseInterrupt(clk.TimerLine)
			if err != nil {
				return
			}
		case <-cycle:
			var done bool
			done, err = machine.Tick()
			if err != nil || done {
				return
			}
		}
	}
}
