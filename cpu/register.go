package cpu

// RegisterFile is the bank of general-purpose registers.
type RegisterFile [REGISTER_COUNT]uint8

// Get the value of a register.
func (rf *RegisterFile) Get(index int) (value uint8, err error) {
	if index < 0 || index >= len(rf) {
		err = ErrRegister(index)
		return
	}

	value = rf[index]
	return
}

// Set a register, reducing the value modulo 256.
func (rf *RegisterFile) Set(index int, value int) (err error) {
	if index < 0 || index >= len(rf) {
		err = ErrRegister(index)
		return
	}

	rf[index] = uint8(value & 0xff)
	return
}
