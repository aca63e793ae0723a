package memory

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// ErrAddressOutOfRange is returned for any access beyond the address space.
var ErrAddressOutOfRange = errors.New(f("address out of range"))

// ErrAddress records the faulting address of an out of range access.
type ErrAddress uint16

func (ea ErrAddress) Error() string {
	return f("address 0x%04x out of range", uint16(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrAddressOutOfRange
}
