package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTooLarge = errors.New(f("image too large"))
)

// ErrImageSyntax is a line of an image that is not an 8 bit binary number.
type ErrImageSyntax struct {
	LineNo int
	Line   string
}

func (err ErrImageSyntax) Error() string {
	return f("line %d '%v' is not a binary byte", err.LineNo, err.Line)
}
