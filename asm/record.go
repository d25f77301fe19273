package asm

import (
	"fmt"
	"strings"
)

// Record is one encoded instruction.
type Record struct {
	LineNo int                 // Source line number, from 1.
	Words  []string            // Source tokens, mnemonic upper cased.
	Value  [FIELD_COUNT]uint16 // Field values, indexed by Field.
}

// Field renders a field as a zero padded binary string of its declared width.
// Bits above the declared width are not rendered.
func (rec Record) Field(fd Field) string {
	return fmt.Sprintf("%0*b", fd.Bits(), uint64(rec.Value[fd])&fd.Max())
}

// Bits renders the record as a 48 character binary string, fields in order.
func (rec Record) Bits() string {
	var sb strings.Builder
	sb.Grow(RECORD_BITS)
	for fd := range Field(FIELD_COUNT) {
		sb.WriteString(rec.Field(fd))
	}
	return sb.String()
}

// Grouped renders the record as 16 bit groups separated by spaces.
func (rec Record) Grouped() string {
	bits := rec.Bits()

	groups := make([]string, 0, (len(bits)+GROUP_BITS-1)/GROUP_BITS)
	for n := 0; n < len(bits); n += GROUP_BITS {
		groups = append(groups, bits[n:min(n+GROUP_BITS, len(bits))])
	}

	return strings.Join(groups, " ")
}

// Columns renders the record as three 16 bit strings: write select and opcode,
// read select B and A, and data.
func (rec Record) Columns() [3]string {
	return [3]string{
		rec.Field(FIELD_WRITE) + rec.Field(FIELD_OPCODE),
		rec.Field(FIELD_READ_B) + rec.Field(FIELD_READ_A),
		rec.Field(FIELD_DATA),
	}
}

// Uint64 returns the record as a 48 bit integer, write select most significant.
func (rec Record) Uint64() (value uint64) {
	for fd := range Field(FIELD_COUNT) {
		value = (value << fd.Bits()) | (uint64(rec.Value[fd]) & fd.Max())
	}
	return
}
