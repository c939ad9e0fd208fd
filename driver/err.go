package driver

import (
	"github.com/ezrec/asm14/translate"
)

var f = translate.From

// ErrFile reports a failure to read or write a file.
type ErrFile struct {
	File string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.File, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
