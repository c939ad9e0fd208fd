// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

// LineKind is the classification of a parsed source line.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_BLANK        = LineKind(0) // blank
	LINE_DIRECTIVE    = LineKind(1) // directive
	LINE_INSTRUCTION  = LineKind(2) // instruction
	LINE_SYNTAX_ERROR = LineKind(3) // syntax error
)

// Directive is an assembler directive tag.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIR_DATA   = Directive(0) // .data
	DIR_STRING = Directive(1) // .string
	DIR_EXTERN = Directive(2) // .extern
	DIR_ENTRY  = Directive(3) // .entry
)

// Operand is a single instruction operand.
type Operand struct {
	Mode   Mode   // MODE_CONSTANT, MODE_SYMBOL or MODE_REGISTER.
	Value  int    // Constant value, or register number.
	Symbol string // Symbol name.
}

// Line is the structured form of one logical source line.
//
// Only the fields selected by Kind are meaningful; a LINE_SYNTAX_ERROR
// line carries nothing but Err.
type Line struct {
	Kind  LineKind
	Label string // Optional 'name:' label.
	Err   error  // Syntax error, for LINE_SYNTAX_ERROR.

	Directive Directive
	Data      []int  // .data values.
	Text      string // .string contents, without quotes.

	Opcode   Opcode
	Indexed  bool      // Group B LABEL(op,op) form.
	Operands []Operand // Instruction operands, or the two index operands.

	Symbol string // .extern/.entry argument, or the indexed label.
}

// operandWords counts the extra words used by a list of operands.
// Two registers share a single word.
func operandWords(ops []Operand) int {
	if len(ops) == 2 && ops[0].Mode == MODE_REGISTER && ops[1].Mode == MODE_REGISTER {
		return 1
	}
	return len(ops)
}

// Size returns the number of code words an instruction line encodes to.
func (line *Line) Size() (size int) {
	if line.Kind != LINE_INSTRUCTION {
		return
	}

	size = 1
	switch line.Opcode.Group() {
	case GROUP_A:
		size += operandWords(line.Operands)
	case GROUP_B:
		if line.Indexed {
			size += 1 + operandWords(line.Operands)
		} else {
			size += 1
		}
	}

	return
}

// DataSize returns the number of data words a .data or .string line encodes to.
func (line *Line) DataSize() (size int) {
	if line.Kind != LINE_DIRECTIVE {
		return
	}

	switch line.Directive {
	case DIR_DATA:
		size = len(line.Data)
	case DIR_STRING:
		size = len(line.Text) + 1
	}

	return
}
