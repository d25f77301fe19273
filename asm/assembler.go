// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Assembler is a single pass encoder for the MAR instruction set.
//
// An Assembler only holds configuration, so one Assembler may be shared by
// concurrent callers.
type Assembler struct {
	Verbose  bool         // If set, verbosely logs the assembler actions.
	Opcodes  *OpcodeTable // Opcode table. If nil, OpcodesClassic is used.
	Mode     Mode         // Output shaping used by Assemble.
	Overflow Overflow     // Policy for operands wider than their field.
	MaxLines int          // If non-zero, the most source lines accepted.
}

// opcodes returns the active opcode table.
func (asm *Assembler) opcodes() *OpcodeTable {
	if asm.Opcodes == nil {
		return OpcodesClassic
	}
	return asm.Opcodes
}

// valueOf parses an operand for a field.
func (asm *Assembler) valueOf(word string, fd Field) (value uint16, err error) {
	for _, ch := range word {
		if ch < '0' || ch > '9' {
			err = ErrParseNumber(word)
			return
		}
	}

	v64, err := strconv.ParseUint(word, 10, fd.Bits())
	switch {
	case err == nil:
		value = uint16(v64)
		return
	case !errors.Is(err, strconv.ErrRange):
		err = ErrParseNumber(word)
		return
	}

	if asm.Overflow != OVERFLOW_TRUNCATE {
		err = ErrValueRange{Field: fd, Word: word, MaxBits: fd.Bits()}
		return
	}

	// Keep the low bits. The word may not fit in 64 bits.
	bn, ok := new(big.Int).SetString(word, 10)
	if !ok {
		err = ErrParseNumber(word)
		return
	}
	bn.And(bn, new(big.Int).SetUint64(fd.Max()))
	value, err = uint16(bn.Uint64()), nil

	return
}

// Encode encodes the tokens of a single source line.
func (asm *Assembler) Encode(words []string) (rec Record, err error) {
	if len(words) == 0 {
		err = ErrUnknownInstruction("")
		return
	}

	mnemonic := strings.ToUpper(words[0])
	opcode, ok := asm.opcodes().Lookup(mnemonic)
	if !ok {
		err = ErrUnknownInstruction(mnemonic)
		return
	}

	rec.Words = append([]string{mnemonic}, words[1:]...)
	rec.Value[FIELD_OPCODE] = uint16(opcode)

	// Missing operands are zero, extra operands are ignored.
	args := words[1:]
	if len(args) > OPERAND_COUNT {
		args = args[:OPERAND_COUNT]
	}
	for n, word := range args {
		fd := operandField[n]
		rec.Value[fd], err = asm.valueOf(word, fd)
		if err != nil {
			return
		}
	}

	return
}

// scanLines is bufio.ScanLines, also ending a line at a lone "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return
	}

	n := bytes.IndexAny(data, "\r\n")
	switch {
	case n < 0:
		if atEOF {
			return len(data), data, nil
		}
	case data[n] == '\n':
		return n + 1, data[:n], nil
	case n+1 < len(data):
		if data[n+1] == '\n' {
			return n + 2, data[:n], nil
		}
		return n + 1, data[:n], nil
	case atEOF:
		return n + 1, data[:n], nil
	}

	// Request more data.
	return
}

// Parse parses an input stream into a Program of encoded records. The first
// error stops the parse, and no Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, math.MaxInt)
	scanner.Split(scanLines)

	var line string
	var lineno int
	var records []Record

	defer func() {
		if err != nil {
			prog = nil
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1
		line = text

		if asm.MaxLines > 0 && lineno > asm.MaxLines {
			err = ErrInputTooLarge
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		code, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(code)
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		var rec Record
		rec, err = asm.Encode(words)
		if err != nil {
			return
		}
		rec.LineNo = lineno

		records = append(records, rec)
	}

	err = scanner.Err()
	if err != nil {
		// The failed line was never returned by the scanner.
		lineno += 1
		line = ""
		return
	}

	prog = &Program{
		Records: records,
	}

	return
}

// Assemble assembles a whole source text, shaped by the Assembler's Mode.
func (asm *Assembler) Assemble(source string) (out *Output, err error) {
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	out = prog.Output(asm.Mode)

	return
}
