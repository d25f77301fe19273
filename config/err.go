package config

import (
	"github.com/ezrec/marasm/translate"
)

var f = translate.From

// ErrConfigUnknown is a configuration variable that is not recognised.
type ErrConfigUnknown string

func (err ErrConfigUnknown) Error() string {
	return f("unknown setting '%v'", string(err))
}

// ErrConfigType is a configuration variable of the wrong type.
type ErrConfigType struct {
	Name string
	Want string
}

func (err ErrConfigType) Error() string {
	return f("setting '%v' must be %v", err.Name, err.Want)
}

// ErrConfig locates a configuration error.
type ErrConfig struct {
	Filename string
	Name     string
	Err      error
}

func (err ErrConfig) Error() string {
	return f("%v: %v: %v", err.Filename, err.Name, err.Err)
}

func (err ErrConfig) Unwrap() error {
	return err.Err
}
