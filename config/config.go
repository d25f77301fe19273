// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads MAR assembler settings from a Starlark file.
//
// A configuration file may set any of:
//
//	opcodes = CLASSIC          # list of mnemonics, position is the opcode
//	mode = "grouped"           # or "columns"
//	overflow = "reject"        # or "truncate"
//	max_lines = 0              # zero for no limit
//
// CLASSIC and EXTENDED are predeclared as the built in opcode tables.
// Globals that begin with an upper case letter or an underscore are free for
// use as helpers.
package config

import (
	"unicode"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/marasm/asm"
)

// Config is the set of assembler settings.
type Config struct {
	Opcodes  *asm.OpcodeTable
	Mode     asm.Mode
	Overflow asm.Overflow
	MaxLines int
}

// Default returns the classic opcode table with grouped output, rejecting
// operands wider than their field.
func Default() *Config {
	return &Config{
		Opcodes:  asm.OpcodesClassic,
		Mode:     asm.MODE_GROUPED,
		Overflow: asm.OVERFLOW_REJECT,
	}
}

// Assembler creates an assembler using the configuration.
func (cfg *Config) Assembler() *asm.Assembler {
	return &asm.Assembler{
		Opcodes:  cfg.Opcodes,
		Mode:     cfg.Mode,
		Overflow: cfg.Overflow,
		MaxLines: cfg.MaxLines,
	}
}

// opcodeList converts an opcode table to a frozen Starlark list.
func opcodeList(table *asm.OpcodeTable) *starlark.List {
	var elems []starlark.Value
	for _, name := range table.All() {
		elems = append(elems, starlark.String(name))
	}
	list := starlark.NewList(elems)
	list.Freeze()
	return list
}

// setter applies one configuration global.
type setter func(cfg *Config, name string, value starlark.Value) error

var setters = map[string]setter{
	"opcodes":   setOpcodes,
	"mode":      setMode,
	"overflow":  setOverflow,
	"max_lines": setMaxLines,
}

func setOpcodes(cfg *Config, name string, value starlark.Value) (err error) {
	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = ErrConfigType{Name: name, Want: f("a list of strings")}
		return
	}

	var names []string
	iter := iterable.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		str, ok := starlark.AsString(elem)
		if !ok {
			err = ErrConfigType{Name: name, Want: f("a list of strings")}
			return
		}
		names = append(names, str)
	}

	cfg.Opcodes, err = asm.NewOpcodeTable(names...)
	return
}

func setMode(cfg *Config, name string, value starlark.Value) (err error) {
	str, ok := starlark.AsString(value)
	if !ok {
		err = ErrConfigType{Name: name, Want: f("a string")}
		return
	}

	cfg.Mode, err = asm.ParseMode(str)
	return
}

func setOverflow(cfg *Config, name string, value starlark.Value) (err error) {
	str, ok := starlark.AsString(value)
	if !ok {
		err = ErrConfigType{Name: name, Want: f("a string")}
		return
	}

	cfg.Overflow, err = asm.ParseOverflow(str)
	return
}

func setMaxLines(cfg *Config, name string, value starlark.Value) (err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrConfigType{Name: name, Want: f("an integer")}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > int64(^uint32(0)>>1) {
		err = ErrConfigType{Name: name, Want: f("a non-negative integer")}
		return
	}

	cfg.MaxLines = int(st_int64)
	return
}

// Load executes a Starlark configuration. If src is nil the file named by
// filename is read, otherwise src holds the file content as for
// starlark.ExecFileOptions.
func Load(filename string, src any) (cfg *Config, err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"CLASSIC":  opcodeList(asm.OpcodesClassic),
		"EXTENDED": opcodeList(asm.OpcodesExtended),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	cfg = Default()
	for _, name := range dict.Keys() {
		set, ok := setters[name]
		if !ok {
			first, _ := utf8.DecodeRuneInString(name)
			if first == '_' || unicode.IsUpper(first) {
				continue
			}
			cfg, err = nil, ErrConfig{Filename: filename, Name: name, Err: ErrConfigUnknown(name)}
			return
		}

		err = set(cfg, name, dict[name])
		if err != nil {
			cfg, err = nil, ErrConfig{Filename: filename, Name: name, Err: err}
			return
		}
	}

	return
}
