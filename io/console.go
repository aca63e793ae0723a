package io

import (
	"io"
	"strconv"
)

// Console is the character output port. It wraps an io.Writer; a nil
// Output discards everything.
type Console struct {
	Output io.Writer

	Written int // Bytes written to Output.
}

func (con *Console) write(data []byte) (err error) {
	if con.Output == nil {
		return
	}

	n, err := con.Output.Write(data)
	con.Written += n
	return
}

// PrintNumber writes the decimal text of value, followed by a newline.
func (con *Console) PrintNumber(value uint8) (err error) {
	buf := strconv.AppendUint(nil, uint64(value), 10)
	buf = append(buf, '\n')
	err = con.write(buf)
	return
}

// PrintChar writes value as a single character, with no terminator.
func (con *Console) PrintChar(value uint8) (err error) {
	err = con.write([]byte{value})
	return
}
