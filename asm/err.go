package asm

import (
	"errors"

	"github.com/ezrec/asm14/translate"
)

var f = translate.From

var (
	// Line syntax errors
	ErrColonRepeated    = errors.New(f("token ':' appears twice or more"))
	ErrArgumentsMissing = errors.New(f("no arguments"))
	ErrOperandMissing   = errors.New(f("missing operand"))
	ErrSeparatorMissing = errors.New(f("expected separator ','"))
	ErrExtraneousText   = errors.New(f("extraneous text"))
	ErrBracketClose     = errors.New(f("missing closing bracket ')'"))
	ErrBracketOpen      = errors.New(f("missing opening bracket '('"))
	ErrBracketOrder     = errors.New(f("closing bracket ')' appears before opening bracket '('"))
	ErrBracketSpace     = errors.New(f("label must appear next to opening bracket '(' without spaces"))
	ErrDataMissing      = errors.New(f("expected number"))
	ErrDataTooMany      = errors.New(f("more than 80 values"))
	ErrQuoteOpen        = errors.New(f("expected starting token '\"'"))
	ErrQuoteClose       = errors.New(f("expected ending token '\"'"))

	// Symbol name errors
	ErrSymbolStart     = errors.New(f("starts with non alpha character"))
	ErrSymbolCharacter = errors.New(f("contains a non alpha numeric character"))
	ErrSymbolLength    = errors.New(f("is too long"))

	// Number errors
	ErrNumberInvalid = errors.New(f("invalid number"))
	ErrNumberMaximum = errors.New(f("bigger than maximum"))
	ErrNumberMinimum = errors.New(f("lower than minimum"))

	// Symbol table errors and warnings
	ErrSymbolDuplicate = errors.New(f("symbol duplicated"))
	ErrLabelIgnored    = errors.New(f("label ignored"))
	ErrDataUnlabeled   = errors.New(f("data or string directive without a pointing symbol"))
	ErrLayoutMismatch  = errors.New(f("code generation does not match the symbol table layout"))
)

type ErrKeywordUnknown string

func (err ErrKeywordUnknown) Error() string {
	return f("'%v' unknown keyword", string(err))
}

type ErrSymbolUndefined string

func (err ErrSymbolUndefined) Error() string {
	return f("undefined symbol '%v'", string(err))
}

type ErrEntryUndefined string

func (err ErrEntryUndefined) Error() string {
	return f("symbol '%v' was declared as entry but never defined", string(err))
}

// ErrSymbolInvalid reports a malformed symbol name.
type ErrSymbolInvalid struct {
	Symbol string
	Err    error
}

func (err *ErrSymbolInvalid) Error() string {
	return f("symbol '%v' %v", err.Symbol, err.Err)
}

func (err *ErrSymbolInvalid) Unwrap() error {
	return err.Err
}

// ErrOperand reports a malformed operand or data value.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err *ErrOperand) Error() string {
	return f("'%v' %v", err.Operand, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrInstruction reports a syntax error in the operands of an instruction.
type ErrInstruction struct {
	Opcode Opcode
	Err    error
}

func (err *ErrInstruction) Error() string {
	return f("%v for instruction '%v'", err.Err, err.Opcode)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrDirective reports a syntax error in the arguments of a directive.
type ErrDirective struct {
	Directive Directive
	Err       error
}

func (err *ErrDirective) Error() string {
	return f("%v for directive '%v'", err.Err, err.Directive)
}

func (err *ErrDirective) Unwrap() error {
	return err.Err
}

// ErrSymbolConflict reports an incompatible redefinition of a symbol.
type ErrSymbolConflict struct {
	Symbol string
	Was    SymbolType
	LineNo int
	Now    SymbolType
}

func (err *ErrSymbolConflict) Error() string {
	return f("symbol '%v' is being defined as %v symbol but was defined before as %v symbol in line %v",
		err.Symbol, err.Now, err.Was, err.LineNo)
}

// ErrSymbolRedeclared reports a redundant .extern or .entry declaration.
type ErrSymbolRedeclared struct {
	Symbol string
	Type   SymbolType
	LineNo int
}

func (err *ErrSymbolRedeclared) Error() string {
	return f("symbol '%v' was already declared as %v symbol in line %v", err.Symbol, err.Type, err.LineNo)
}
