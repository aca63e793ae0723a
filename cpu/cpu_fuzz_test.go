package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	ls8io "github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/memory"
)

func FuzzTick(f *testing.F) {
	f.Add([]byte{0x82, 0, 56, 0x82, 1, 4, 0xa2, 0, 1, 0x47, 0, 0x01}, uint8(0), uint8(0))
	f.Add([]byte{0x82, 2, 20, 0x50, 2, 0x01}, uint8(0), uint8(0))
	f.Add([]byte{0x82, 5, 0xff, 0x82, 1, 3, 0x54, 1}, uint8(0b10), uint8(4))
	f.Add([]byte{0x45, 0, 0x54, 7}, uint8(0xff), uint8(1))
	f.Add([]byte{0x13, 0x11, 0x46, 7}, uint8(0), uint8(0))
	f.Add([]byte{0xff}, uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, image []byte, lines uint8, when uint8) {
		assert := assert.New(t)

		ram := &memory.Ram{}
		for n, value := range image {
			if n >= memory.SIZE {
				break
			}
			ram.Poke(uint16(n), value)
		}

		cpu := NewCpu(ram)
		cpu.Console = &ls8io.Console{Output: &bytes.Buffer{}}

		for tick := range 300 {
			if tick == int(when) {
				for line := range INTERRUPT_LINES {
					if lines&(1<<line) != 0 {
						cpu.RaiseInterrupt(line)
					}
				}
			}

			err := cpu.Tick()
			if err == nil {
				if cpu.Halted() {
					break
				}
				continue
			}

			assert.True(cpu.Halted())
			assert.True(errors.Is(err, ErrOpcode{}) ||
				errors.Is(err, ErrRegisterInvalid) ||
				errors.Is(err, ErrAddressOutOfRange), "%v", err)

			regs := cpu.Register
			pc := cpu.Pc
			data := ram.Data
			assert.Equal(ErrHalted, cpu.Tick())
			assert.Equal(regs, cpu.Register)
			assert.Equal(pc, cpu.Pc)
			assert.Equal(data, ram.Data)
			break
		}

		assert.LessOrEqual(cpu.Ticks, 300)
		assert.LessOrEqual(int(cpu.Pc), memory.SIZE)
	})
}
