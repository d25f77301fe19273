// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

// OpcodeTable is an immutable ordered list of mnemonics. The position of a
// mnemonic in the table is its opcode.
type OpcodeTable struct {
	names  []string
	opcode map[string]uint8
}

// Predefined opcode tables.
var (
	// OpcodesClassic is the 15 entry MAR instruction set.
	OpcodesClassic = mustOpcodeTable(
		"NOP", "ADD", "SUB", "AND", "OR", "NOT", "INC", "DCR",
		"SHL", "SHR", "CLR", "STR", "HLT", "LDA", "MOV",
	)

	// OpcodesExtended reserves PH0 to PH5 ahead of the register opcodes.
	OpcodesExtended = mustOpcodeTable(
		"NOP", "ADD", "SUB", "AND", "OR", "NOT", "INC", "DCR",
		"SHL", "SHR", "PH0", "PH1", "PH2", "PH3", "PH4", "PH5",
		"CLR", "LDA", "HLT", "STR", "MOV",
	)
)

func mustOpcodeTable(names ...string) *OpcodeTable {
	table, err := NewOpcodeTable(names...)
	if err != nil {
		panic(err)
	}
	return table
}

// NewOpcodeTable creates an opcode table from an ordered list of mnemonics.
// Mnemonics are matched without regard to case.
func NewOpcodeTable(names ...string) (table *OpcodeTable, err error) {
	if len(names) == 0 {
		err = ErrOpcodeTableEmpty
		return
	}

	if uint64(len(names)-1) > FIELD_OPCODE.Max() {
		err = ErrOpcodeTableSize
		return
	}

	table = &OpcodeTable{
		names:  make([]string, 0, len(names)),
		opcode: make(map[string]uint8, len(names)),
	}

	for n, name := range names {
		if len(name) == 0 || strings.ContainsRune(name, ';') || strings.ContainsFunc(name, unicode.IsSpace) {
			table, err = nil, ErrOpcodeName(name)
			return
		}

		name = strings.ToUpper(name)
		_, ok := table.opcode[name]
		if ok {
			table, err = nil, ErrOpcodeDuplicate(name)
			return
		}

		table.names = append(table.names, name)
		table.opcode[name] = uint8(n)
	}

	return
}

// Len returns the number of opcodes in the table.
func (table *OpcodeTable) Len() int {
	return len(table.names)
}

// Lookup returns the opcode of a mnemonic.
func (table *OpcodeTable) Lookup(mnemonic string) (opcode uint8, ok bool) {
	opcode, ok = table.opcode[strings.ToUpper(mnemonic)]
	return
}

// Mnemonic returns the mnemonic of an opcode.
func (table *OpcodeTable) Mnemonic(opcode uint8) (mnemonic string, ok bool) {
	if int(opcode) >= len(table.names) {
		return
	}

	return table.names[opcode], true
}

// Mnemonics returns a copy of the mnemonics in opcode order.
func (table *OpcodeTable) Mnemonics() []string {
	return slices.Clone(table.names)
}

// All iterates over the opcodes and their mnemonics in opcode order.
func (table *OpcodeTable) All() iter.Seq2[uint8, string] {
	return func(yield func(opcode uint8, mnemonic string) bool) {
		for n, name := range table.names {
			if !yield(uint8(n), name) {
				return
			}
		}
	}
}
