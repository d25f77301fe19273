// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/marasm/internal"
)

// Program is the list of records assembled from a source text.
type Program struct {
	Records []Record
}

// Debug returns the record assembled from a source line.
func (prog *Program) Debug(lineno int) (rec *Record) {
	for n := range prog.Records {
		if prog.Records[n].LineNo == lineno {
			return &prog.Records[n]
		}
	}

	return
}

// Output shapes the program's records according to mode.
func (prog *Program) Output(mode Mode) (out *Output) {
	out = &Output{
		Mode:    mode,
		Streams: make([][]string, mode.Streams()),
	}

	for n := range out.Streams {
		out.Streams[n] = make([]string, 0, len(prog.Records))
	}

	for _, rec := range prog.Records {
		switch mode {
		case MODE_COLUMNS:
			for n, column := range rec.Columns() {
				out.Streams[n] = append(out.Streams[n], column)
			}
		default:
			out.Streams[0] = append(out.Streams[0], rec.Grouped())
		}
	}

	return
}

// Output is assembled text. MODE_GROUPED has a single stream, MODE_COLUMNS
// has three parallel streams where line k of each belongs to record k.
type Output struct {
	Mode    Mode
	Streams [][]string
}

// Text joins each stream into a text blob, one line per record.
func (out *Output) Text() (texts []string) {
	texts = make([]string, len(out.Streams))
	for n, stream := range out.Streams {
		var sb strings.Builder
		for _, line := range stream {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		texts[n] = sb.String()
	}

	return
}

// Rows iterates over the records, one entry per stream in each row.
func (out *Output) Rows() iter.Seq[[]string] {
	seqs := make([]iter.Seq[string], len(out.Streams))
	for n, stream := range out.Streams {
		seqs[n] = slices.Values(stream)
	}

	return internal.IterZip(seqs...)
}

// WriteTo writes the persisted form of the output: one line per record, with
// the streams of MODE_COLUMNS separated by tabs.
func (out *Output) WriteTo(w io.Writer) (n int64, err error) {
	for row := range out.Rows() {
		var wrote int
		wrote, err = io.WriteString(w, strings.Join(row, "\t")+"\n")
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	return
}
