package config

import (
	"github.com/ezrec/asm14/translate"
)

var f = translate.From

// ErrConfigUnknown reports an unknown configuration global.
type ErrConfigUnknown string

func (err ErrConfigUnknown) Error() string {
	return f("unknown configuration setting '%v'", string(err))
}

// ErrConfigType reports a configuration global of the wrong type.
type ErrConfigType struct {
	Name string
	Want string
	Got  string
}

func (err *ErrConfigType) Error() string {
	return f("configuration setting '%v' must be a %v, not a %v", err.Name, err.Want, err.Got)
}

// ErrConfigValue reports a configuration value that could not be used.
type ErrConfigValue struct {
	Name string
	Err  error
}

func (err *ErrConfigValue) Error() string {
	return f("configuration setting '%v': %v", err.Name, err.Err)
}

func (err *ErrConfigValue) Unwrap() error {
	return err.Err
}
