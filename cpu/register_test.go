package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile_Set(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value    int
		expected uint8
	}{
		{0, 0},
		{0xff, 0xff},
		{0x100, 0x00},
		{280, 24},
		{-1, 0xff},
		{-256, 0},
		{0x12345, 0x45},
	}

	var rf RegisterFile
	for _, entry := range table {
		err := rf.Set(3, entry.value)
		assert.NoError(err)
		value, err := rf.Get(3)
		assert.NoError(err)
		assert.Equal(entry.expected, value, "%d", entry.value)
	}
}

func TestRegisterFile_Invalid(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	for _, index := range []int{-1, 8, 255} {
		_, err := rf.Get(index)
		assert.True(errors.Is(err, ErrRegisterInvalid), "%d", index)
		assert.Equal(ErrRegister(index), err)

		err = rf.Set(index, 1)
		assert.True(errors.Is(err, ErrRegisterInvalid), "%d", index)
	}

	assert.Equal(RegisterFile{}, rf)
}

func FuzzRegisterSet(f *testing.F) {
	f.Add(0, 0)
	f.Add(7, 255)
	f.Add(5, 256)
	f.Add(6, -1)
	f.Add(9, 1)

	f.Fuzz(func(t *testing.T, index int, value int) {
		assert := assert.New(t)

		var rf RegisterFile
		err := rf.Set(index, value)
		if index < 0 || index >= REGISTER_COUNT {
			assert.True(errors.Is(err, ErrRegisterInvalid))
			return
		}
		assert.NoError(err)

		got, err := rf.Get(index)
		assert.NoError(err)
		assert.Equal(uint8(((value%256)+256)%256), got)
	})
}
