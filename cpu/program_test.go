package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0, Words: []string{"LDI", "R0", "0x10"}, Bytes: []uint8{0x82, 0, 0x10}},
			{LineNo: 2, Address: 3, Words: []string{"PRN", "R0"}, Bytes: []uint8{0x47, 0}},
			{LineNo: 4, Address: 0x10, Words: []string{"HLT"}, Bytes: []uint8{0x01}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(0x10)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0, Bytes: []uint8{0x01}},
			{LineNo: 2, Address: 4, Bytes: []uint8{0x01}},
		},
	}

	assert.Nil(prog.Debug(2).Opcode)
	assert.Nil(prog.Debug(0xff).Opcode)
	assert.Nil((&Program{}).Debug(0).Opcode)
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{Address: 0, Bytes: []uint8{0x82, 1, 2}},
			{Address: 5, Bytes: []uint8{0x01}},
		},
	}

	var addrs []uint16
	var values []uint8
	for addr, value := range prog.Bytes() {
		addrs = append(addrs, addr)
		values = append(values, value)
	}
	assert.Equal([]uint16{0, 1, 2, 5}, addrs)
	assert.Equal([]uint8{0x82, 1, 2, 0x01}, values)

	// Early exit.
	count := 0
	for range prog.Bytes() {
		count++
		break
	}
	assert.Equal(1, count)

	assert.Equal([]uint8{0x82, 1, 2, 0, 0, 0x01}, prog.Binary())
}
