package asm

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTable(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(15, OpcodesClassic.Len())
	assert.Equal(21, OpcodesExtended.Len())

	opcode, ok := OpcodesClassic.Lookup("ADD")
	assert.True(ok)
	assert.Equal(uint8(1), opcode)

	opcode, ok = OpcodesClassic.Lookup("mov")
	assert.True(ok)
	assert.Equal(uint8(14), opcode)

	opcode, ok = OpcodesExtended.Lookup("Lda")
	assert.True(ok)
	assert.Equal(uint8(17), opcode)

	_, ok = OpcodesClassic.Lookup("PH0")
	assert.False(ok)

	mnemonic, ok := OpcodesClassic.Mnemonic(12)
	assert.True(ok)
	assert.Equal("HLT", mnemonic)

	_, ok = OpcodesClassic.Mnemonic(15)
	assert.False(ok)

	// Lookup and Mnemonic agree for every entry.
	for _, table := range []*OpcodeTable{OpcodesClassic, OpcodesExtended} {
		names := table.Mnemonics()
		assert.Equal(table.Len(), len(names))
		for opcode, mnemonic := range table.All() {
			assert.Equal(names[opcode], mnemonic)
			found, ok := table.Lookup(mnemonic)
			assert.True(ok)
			assert.Equal(opcode, found)
		}
	}

	// Mnemonics is a copy.
	names := OpcodesClassic.Mnemonics()
	names[0] = "XXX"
	mnemonic, _ = OpcodesClassic.Mnemonic(0)
	assert.Equal("NOP", mnemonic)
}

func TestOpcodeTable_All_Stop(t *testing.T) {
	assert := assert.New(t)

	var got []string
	for _, mnemonic := range OpcodesClassic.All() {
		got = append(got, mnemonic)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal([]string{"NOP", "ADD", "SUB"}, got)
}

func TestNewOpcodeTable(t *testing.T) {
	assert := assert.New(t)

	table, err := NewOpcodeTable("nop", "Jmp")
	assert.NoError(err)
	assert.Equal([]string{"NOP", "JMP"}, table.Mnemonics())

	table, err = NewOpcodeTable()
	assert.Nil(table)
	assert.ErrorIs(err, ErrOpcodeTableEmpty)

	table, err = NewOpcodeTable("NOP", "ADD", "add")
	assert.Nil(table)
	assert.ErrorIs(err, ErrOpcodeDuplicate("ADD"))

	for _, bad := range []string{"", "A B", " NOP", "X;Y", "TAB\t"} {
		table, err = NewOpcodeTable("NOP", bad)
		assert.Nil(table, bad)
		assert.ErrorIs(err, ErrOpcodeName(bad), bad)
	}

	names := make([]string, 256)
	for n := range names {
		names[n] = fmt.Sprintf("OP%d", n)
	}
	table, err = NewOpcodeTable(names...)
	assert.NoError(err)
	opcode, ok := table.Lookup("OP255")
	assert.True(ok)
	assert.Equal(uint8(255), opcode)

	table, err = NewOpcodeTable(append(slices.Clone(names), "OP256")...)
	assert.Nil(table)
	assert.ErrorIs(err, ErrOpcodeTableSize)
}
