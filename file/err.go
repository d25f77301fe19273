package file

import (
	"errors"

	"github.com/ezrec/marasm/translate"
)

var f = translate.From

var (
	ErrNotDirectory = errors.New(f("not a directory"))
)

// ErrExtension is a source file name without the .mar extension.
type ErrExtension string

func (err ErrExtension) Error() string {
	return f("'%v' is not a %v file", string(err), SOURCE_EXT)
}
