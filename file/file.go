// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package file persists MAR sources and assembled output.
//
// Sources are plain text with the .mar extension, stored verbatim. Assembled
// output is plain text in the form written by asm.Output.WriteTo.
package file

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode"

	"github.com/ezrec/marasm/asm"
)

const (
	SOURCE_EXT = ".mar" // Source file extension.
	OUTPUT_EXT = ".txt" // Assembled output file extension.
)

// IsSource returns true if name has the source extension, in any case.
func IsSource(name string) bool {
	return strings.EqualFold(path.Ext(name), SOURCE_EXT)
}

// OutputName returns the default output name for a source name.
func OutputName(source string) string {
	ext := path.Ext(source)
	if strings.EqualFold(ext, SOURCE_EXT) {
		source = strings.TrimSuffix(source, ext)
	}
	return source + OUTPUT_EXT
}

// LoadSource reads a .mar source from a file system.
func LoadSource(filesys fs.FS, name string) (text string, err error) {
	if !IsSource(name) {
		err = ErrExtension(name)
		return
	}

	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	text = string(data)
	return
}

// create makes the parent directories of name, then creates the file.
func create(filesys CreateFS, name string) (file io.WriteCloser, err error) {
	dir, base := path.Split(name)
	if len(dir) != 0 {
		for _, part := range strings.Split(strings.TrimSuffix(dir, "/"), "/") {
			var sub CreateFS
			sub, err = filesys.Sub(part)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return
				}
				// Create the directory
				err = filesys.Mkdir(part, 0755)
				if err != nil {
					return
				}
				sub, err = filesys.Sub(part)
				if err != nil {
					return
				}
			}
			filesys = sub
		}
	}

	return filesys.Create(base)
}

// SaveSource writes a .mar source, with trailing white space removed.
func SaveSource(filesys CreateFS, name string, text string) (err error) {
	if !IsSource(name) {
		err = ErrExtension(name)
		return
	}

	file, err := create(filesys, name)
	if err != nil {
		return
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	_, err = io.WriteString(file, strings.TrimRightFunc(text, unicode.IsSpace))
	return
}

// SaveOutput writes assembled output. The output extension is added if name
// has no extension.
func SaveOutput(filesys CreateFS, name string, out *asm.Output) (err error) {
	if len(path.Ext(name)) == 0 {
		name += OUTPUT_EXT
	}

	file, err := create(filesys, name)
	if err != nil {
		return
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	_, err = out.WriteTo(file)
	return
}
