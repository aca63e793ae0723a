package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_PrintNumber(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	con := &Console{Output: output}

	assert.NoError(con.PrintNumber(224))
	assert.NoError(con.PrintNumber(0))
	assert.NoError(con.PrintNumber(255))

	assert.Equal("224\n0\n255\n", output.String())
	assert.Equal(10, con.Written)
}

func TestConsole_PrintChar(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	con := &Console{Output: output}

	for _, ch := range []byte("Hi!") {
		assert.NoError(con.PrintChar(ch))
	}

	assert.Equal("Hi!", output.String())
}

func TestConsole_Discard(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}
	assert.NoError(con.PrintNumber(12))
	assert.NoError(con.PrintChar('x'))
	assert.Equal(0, con.Written)
}
