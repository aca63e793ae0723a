// Package memory implements the byte-addressable RAM of the LS-8.
//
// The address space is 0x00-0xFF. Accesses outside of it fail with
// ErrAddressOutOfRange rather than wrapping.
package memory
