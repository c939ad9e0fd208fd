package preasm

import (
	"errors"

	"github.com/ezrec/asm14/translate"
)

var f = translate.From

var (
	ErrLineLength      = errors.New(f("line longer than 80 characters"))
	ErrMacroSyntax     = errors.New(f("mcr syntax"))
	ErrMacroKeyword    = errors.New(f("mcr name is a reserved word"))
	ErrMacroNesting    = errors.New(f("mcr in mcr prohibited"))
	ErrMacroDuplicate  = errors.New(f("mcr duplicated"))
	ErrMacroLonely     = errors.New(f("mcr without endmcr"))
	ErrMacroLonelyEndm = errors.New(f("endmcr without mcr"))
)

// ErrSyntax locates an error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
