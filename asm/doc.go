// Package asm implements the encoder for the MAR instruction set.
//
// Each source line holds one instruction, a mnemonic followed by up to four
// base-10 operands in the order write select, read select B, read select A and
// data. The mnemonic's position in an OpcodeTable is its opcode. An encoded
// Record is 48 bits wide: 8 bits of write select, 8 bits of opcode, 8 bits each
// of read select B and A, and 16 bits of data.
//
// Assembled records are shaped either as one line of three 16 bit groups per
// instruction (MODE_GROUPED), or as three parallel 16 bit streams (MODE_COLUMNS).
package asm
