package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRam_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}

	err := ram.Write(0x10, 0xab)
	assert.NoError(err)

	value, err := ram.Read(0x10)
	assert.NoError(err)
	assert.Equal(uint8(0xab), value)

	assert.Equal(1, ram.Reads)
	assert.Equal(1, ram.Writes)
}

func TestRam_Bounds(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}

	err := ram.Write(0xff, 1)
	assert.NoError(err)

	_, err = ram.Read(0x100)
	assert.True(errors.Is(err, ErrAddressOutOfRange))
	assert.Equal(ErrAddress(0x100), err)

	err = ram.Write(0x100, 1)
	assert.True(errors.Is(err, ErrAddressOutOfRange))

	err = ram.Poke(0x1ff, 1)
	assert.True(errors.Is(err, ErrAddressOutOfRange))

	_, err = ram.Peek(0x1ff)
	assert.True(errors.Is(err, ErrAddressOutOfRange))

	assert.Equal(0, ram.Reads)
	assert.Equal(1, ram.Writes)
}

func TestRam_PokePeek(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}
	assert.NoError(ram.Poke(0x20, 0x55))

	value, err := ram.Peek(0x20)
	assert.NoError(err)
	assert.Equal(uint8(0x55), value)

	assert.Equal(0, ram.Reads)
	assert.Equal(0, ram.Writes)
}

func TestRam_Reset(t *testing.T) {
	assert := assert.New(t)

	ram := &Ram{}
	ram.Write(0x00, 1)
	ram.Write(0xff, 2)
	ram.Read(0x00)

	ram.Reset()

	assert.Equal([SIZE]uint8{}, ram.Data)
	assert.Equal(0, ram.Reads)
	assert.Equal(0, ram.Writes)
}
