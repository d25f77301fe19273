package asm

import (
	"errors"

	"github.com/ezrec/marasm/translate"
)

var f = translate.From

var (
	// Opcode table errors
	ErrOpcodeTableEmpty = errors.New(f("opcode table empty"))
	ErrOpcodeTableSize  = errors.New(f("opcode table exceeds opcode field"))

	// Assembler errors
	ErrInputTooLarge = errors.New(f("input exceeds line limit"))
)

// ErrOpcodeDuplicate is a mnemonic listed twice in an opcode table.
type ErrOpcodeDuplicate string

func (err ErrOpcodeDuplicate) Error() string {
	return f("opcode %v duplicated", string(err))
}

// ErrOpcodeName is a mnemonic that could never be tokenized from source.
type ErrOpcodeName string

func (err ErrOpcodeName) Error() string {
	return f("opcode '%v' is not a valid mnemonic", string(err))
}

// ErrUnknownInstruction is a mnemonic missing from the opcode table.
type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction '%v'", string(err))
}

// ErrParseNumber is an operand that is not a base-10 unsigned integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrValueRange is an operand too wide for its field.
type ErrValueRange struct {
	Field   Field
	Word    string
	MaxBits int
}

func (err ErrValueRange) Error() string {
	return f("%v value %v exceeds %v bits", err.Field, err.Word, err.MaxBits)
}

// ErrModeInvalid is an unknown output mode name.
type ErrModeInvalid string

func (err ErrModeInvalid) Error() string {
	return f("'%v' is not an output mode", string(err))
}

// ErrOverflowInvalid is an unknown overflow policy name.
type ErrOverflowInvalid string

func (err ErrOverflowInvalid) Error() string {
	return f("'%v' is not an overflow policy", string(err))
}

// ErrSyntax locates an assembly error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
