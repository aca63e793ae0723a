package cpu

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_MUL = AluOp(1) // mul
)

// Alu applies op to the values of reg_a and reg_b, storing the result in
// reg_a. Both registers are validated before any state changes.
//
// MUL sets the overflow flag when the full product exceeds a byte. No
// other operation touches the flag.
func (cpu *Cpu) Alu(op AluOp, reg_a, reg_b int) (err error) {
	a, err := cpu.Register.Get(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.Register.Get(reg_b)
	if err != nil {
		return
	}

	var result int
	switch op {
	case ALU_OP_ADD:
		result = int(a) + int(b)
	case ALU_OP_MUL:
		result = int(a) * int(b)
		cpu.Overflow = result > 0xff
	default:
		err = ErrAluInvalid
		return
	}

	err = cpu.Register.Set(reg_a, result)
	return
}
