// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

// Field is one fixed width component of an encoded instruction.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_WRITE  = Field(0) // write
	FIELD_OPCODE = Field(1) // opcode
	FIELD_READ_B = Field(2) // readB
	FIELD_READ_A = Field(3) // readA
	FIELD_DATA   = Field(4) // data
)

// FIELD_COUNT is the number of fields in a Record.
const FIELD_COUNT = 5

// RECORD_BITS is the total width of an encoded Record.
const RECORD_BITS = 48

// GROUP_BITS is the width of a group in MODE_GROUPED output.
const GROUP_BITS = 16

// fieldBits is the declared width of each field.
var fieldBits = [FIELD_COUNT]int{8, 8, 8, 8, 16}

// operandField maps operand position to its field.
var operandField = [...]Field{FIELD_WRITE, FIELD_READ_B, FIELD_READ_A, FIELD_DATA}

// OPERAND_COUNT is the number of operands an instruction accepts.
const OPERAND_COUNT = len(operandField)

// Bits returns the declared width of the field.
func (fd Field) Bits() int {
	return fieldBits[fd]
}

// Max returns the largest value the field can hold.
func (fd Field) Max() uint64 {
	return (uint64(1) << fd.Bits()) - 1
}

// Mode selects how assembled records are shaped into output.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_GROUPED = Mode(0) // grouped
	MODE_COLUMNS = Mode(1) // columns
)

// Streams returns the number of parallel output streams the mode produces.
func (mode Mode) Streams() int {
	if mode == MODE_COLUMNS {
		return 3
	}
	return 1
}

// ParseMode returns the Mode named by str.
func ParseMode(str string) (mode Mode, err error) {
	for _, mode = range []Mode{MODE_GROUPED, MODE_COLUMNS} {
		if mode.String() == str {
			return
		}
	}

	mode = MODE_GROUPED
	err = ErrModeInvalid(str)
	return
}

// Overflow is the policy for operand values wider than their field.
type Overflow int

//go:generate go tool stringer -linecomment -type=Overflow
const (
	OVERFLOW_REJECT   = Overflow(0) // reject
	OVERFLOW_TRUNCATE = Overflow(1) // truncate
)

// ParseOverflow returns the Overflow policy named by str.
func ParseOverflow(str string) (overflow Overflow, err error) {
	for _, overflow = range []Overflow{OVERFLOW_REJECT, OVERFLOW_TRUNCATE} {
		if overflow.String() == str {
			return
		}
	}

	overflow = OVERFLOW_REJECT
	err = ErrOverflowInvalid(str)
	return
}
