package memory

const (
	SIZE = 256 // Bytes of addressable memory.
)

// Ram is the main memory. The zero value is cleared memory.
type Ram struct {
	Data [SIZE]uint8

	Reads  int // Read access counter.
	Writes int // Write access counter.
}

// Reset clears memory and the access counters.
func (ram *Ram) Reset() {
	clear(ram.Data[:])
	ram.Reads = 0
	ram.Writes = 0
}

// Read a byte.
func (ram *Ram) Read(addr uint16) (value uint8, err error) {
	if int(addr) >= len(ram.Data) {
		err = ErrAddress(addr)
		return
	}

	ram.Reads++
	value = ram.Data[addr]
	return
}

// Write a byte.
func (ram *Ram) Write(addr uint16, value uint8) (err error) {
	if int(addr) >= len(ram.Data) {
		err = ErrAddress(addr)
		return
	}

	ram.Writes++
	ram.Data[addr] = value
	return
}

// Poke stores a byte without counting it as a machine access.
// Used by the loader before the clock starts.
func (ram *Ram) Poke(addr uint16, value uint8) (err error) {
	if int(addr) >= len(ram.Data) {
		err = ErrAddress(addr)
		return
	}

	ram.Data[addr] = value
	return
}

// Peek reads a byte without counting it as a machine access.
func (ram *Ram) Peek(addr uint16) (value uint8, err error) {
	if int(addr) >= len(ram.Data) {
		err = ErrAddress(addr)
		return
	}

	value = ram.Data[addr]
	return
}
