package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// ROM_SIZE is the largest image that fits in memory.
const ROM_SIZE = 256

// Poker stores bytes into memory before the machine runs.
type Poker interface {
	Poke(addr uint16, value uint8) error
}

// Rom holds a program image, loaded at address 0.
type Rom struct {
	Data []uint8
}

// Bytes iterates over the image and the address of each byte.
func (rc *Rom) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, value uint8) bool) {
		for n, value := range rc.Data {
			if !yield(uint16(n), value) {
				return
			}
		}
	}
}

// Load pokes the image into memory.
func (rc *Rom) Load(mem Poker) (err error) {
	if len(rc.Data) > ROM_SIZE {
		err = ErrImageTooLarge
		return
	}

	for addr, value := range rc.Bytes() {
		err = mem.Poke(addr, value)
		if err != nil {
			return
		}
	}

	return
}

// Unmarshal reads an image in .ls8 format: one byte per line written as
// eight binary digits. Text after '#' and blank lines are ignored.
func (rc *Rom) Unmarshal(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var data []uint8
	var lineno int
	for scanner.Scan() {
		lineno++
		text := scanner.Text()
		line, _, _ := strings.Cut(text, "#")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if len(line) != 8 {
			err = ErrImageSyntax{LineNo: lineno, Line: text}
			return
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrImageSyntax{LineNo: lineno, Line: text}
			return
		}

		if len(data) == ROM_SIZE {
			err = ErrImageTooLarge
			return
		}
		data = append(data, uint8(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rc.Data = data
	return
}

// Marshal writes the image in .ls8 format. If comment is not nil, it is
// called for each address and any text returned is appended after '#'.
func (rc *Rom) Marshal(output io.Writer, comment func(addr uint16) string) (err error) {
	w := bufio.NewWriter(output)

	for addr, value := range rc.Bytes() {
		line := fmt.Sprintf("%08b", value)
		if comment != nil {
			text := comment(addr)
			if len(text) != 0 {
				line += " # " + text
			}
		}
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}
