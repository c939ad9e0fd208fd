// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"strconv"
	"strings"
)

// spaces is the set of characters separating tokens.
const spaces = " \t\n\r\f\v"

// opcodeMap maps instruction mnemonics.
var opcodeMap = map[string]Opcode{
	"mov":  OP_MOV,
	"cmp":  OP_CMP,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"lea":  OP_LEA,
	"not":  OP_NOT,
	"clr":  OP_CLR,
	"inc":  OP_INC,
	"dec":  OP_DEC,
	"jmp":  OP_JMP,
	"bne":  OP_BNE,
	"red":  OP_RED,
	"prn":  OP_PRN,
	"jsr":  OP_JSR,
	"rts":  OP_RTS,
	"stop": OP_STOP,
}

// directiveMap maps directive keywords.
var directiveMap = map[string]Directive{
	".data":   DIR_DATA,
	".string": DIR_STRING,
	".extern": DIR_EXTERN,
	".entry":  DIR_ENTRY,
}

// IsKeyword returns true if the word is an instruction mnemonic or a directive.
func IsKeyword(word string) bool {
	_, is_op := opcodeMap[word]
	_, is_dir := directiveMap[word]
	return is_op || is_dir
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// cutSpace splits off the first token, trimming the remainder.
func cutSpace(text string) (token, rest string) {
	n := strings.IndexAny(text, spaces)
	if n < 0 {
		return text, ""
	}
	return text[:n], strings.Trim(text[n+1:], spaces)
}

// ValidateSymbol checks that name is a letter followed by at most 29
// letters or digits.
func ValidateSymbol(name string) (err error) {
	switch {
	case len(name) == 0 || !isAlpha(name[0]):
		err = ErrSymbolStart
	case strings.IndexFunc(name, func(r rune) bool {
		return r > 0x7f || !(isAlpha(byte(r)) || isDigit(byte(r)))
	}) >= 0:
		err = ErrSymbolCharacter
	case len(name) > SYMBOL_MAX_LEN:
		err = ErrSymbolLength
	}

	if err != nil {
		err = &ErrSymbolInvalid{Symbol: name, Err: err}
	}

	return
}

// parseNumber parses a base 10 signed integer in the range [lo, hi].
func parseNumber(text string, lo, hi int) (value int, err error) {
	v64, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		switch {
		case !errors.Is(err, strconv.ErrRange):
			err = ErrNumberInvalid
		case strings.HasPrefix(text, "-"):
			err = ErrNumberMinimum
		default:
			err = ErrNumberMaximum
		}
		return
	}

	value = int(v64)
	switch {
	case value > hi:
		err = ErrNumberMaximum
	case value < lo:
		err = ErrNumberMinimum
	}

	return
}

// ParseOperand parses a single '#constant', 'rN' register or symbol operand.
func ParseOperand(text string) (op Operand, err error) {
	switch {
	case len(text) == 0:
		err = ErrOperandMissing
	case text[0] == '#':
		op.Mode = MODE_CONSTANT
		op.Value, err = parseNumber(text[1:], CONSTANT_MIN, CONSTANT_MAX)
		if err != nil {
			err = &ErrOperand{Operand: text, Err: err}
		}
	case len(text) > 1 && text[0] == 'r' && isDigit(text[1]):
		op.Mode = MODE_REGISTER
		op.Value, err = parseNumber(text[1:], 0, REGISTER_COUNT-1)
		if err != nil {
			err = &ErrOperand{Operand: text, Err: err}
		}
	default:
		op.Mode = MODE_SYMBOL
		op.Symbol = text
		err = ValidateSymbol(text)
	}

	return
}

// parsePair parses two comma separated operands.
func parsePair(args string) (ops []Operand, err error) {
	left, right, ok := strings.Cut(args, ",")
	if !ok {
		err = ErrSeparatorMissing
		return
	}

	ops = make([]Operand, 0, 2)
	for _, text := range []string{left, right} {
		text = strings.Trim(text, spaces)
		if strings.ContainsAny(text, spaces+",") {
			err = ErrExtraneousText
			return
		}

		var op Operand
		op, err = ParseOperand(text)
		if err != nil {
			return
		}
		ops = append(ops, op)
	}

	return
}

// parseGroupB parses either a single operand, or the LABEL(op,op) form.
func (line *Line) parseGroupB(args string) (err error) {
	opening := strings.IndexByte(args, '(')
	closing := strings.IndexByte(args, ')')

	switch {
	case opening < 0 && closing < 0:
		if strings.ContainsAny(args, spaces+",") {
			err = ErrExtraneousText
			return
		}
		var op Operand
		op, err = ParseOperand(args)
		if err != nil {
			return
		}
		line.Operands = []Operand{op}
	case closing < 0:
		err = ErrBracketClose
	case opening < 0:
		err = ErrBracketOpen
	case closing < opening:
		err = ErrBracketOrder
	default:
		label := args[:opening]
		if strings.ContainsAny(label, spaces) {
			err = ErrBracketSpace
			return
		}
		err = ValidateSymbol(label)
		if err != nil {
			return
		}
		if len(strings.Trim(args[closing+1:], spaces)) != 0 {
			err = ErrExtraneousText
			return
		}
		line.Operands, err = parsePair(args[opening+1 : closing])
		if err != nil {
			return
		}
		line.Indexed = true
		line.Symbol = label
	}

	return
}

// parseInstruction parses the operands of an instruction.
func (line *Line) parseInstruction(args string) (err error) {
	group := line.Opcode.Group()

	switch {
	case group == GROUP_C:
		if len(args) != 0 {
			err = ErrExtraneousText
		}
	case len(args) == 0:
		err = ErrArgumentsMissing
	case group == GROUP_A:
		line.Operands, err = parsePair(args)
	case group == GROUP_B:
		err = line.parseGroupB(args)
	}

	if err != nil {
		err = &ErrInstruction{Opcode: line.Opcode, Err: err}
	}

	return
}

// parseData parses a comma separated list of numbers.
func parseData(args string) (data []int, err error) {
	fields := strings.Split(args, ",")
	if len(fields) > DATA_MAX_VALUES {
		err = ErrDataTooMany
		return
	}

	data = make([]int, 0, len(fields))
	for _, field := range fields {
		field = strings.Trim(field, spaces)
		if len(field) == 0 {
			err = ErrDataMissing
			return
		}
		if strings.ContainsAny(field, spaces) {
			err = ErrSeparatorMissing
			return
		}
		var value int
		value, err = parseNumber(field, CONSTANT_MIN, CONSTANT_MAX)
		if err != nil {
			err = &ErrOperand{Operand: field, Err: err}
			return
		}
		data = append(data, value)
	}

	return
}

// parseString parses a single double quoted string.
func parseString(args string) (text string, err error) {
	if args[0] != '"' {
		err = ErrQuoteOpen
		return
	}

	end := strings.IndexByte(args[1:], '"')
	if end < 0 {
		err = ErrQuoteClose
		return
	}

	if len(strings.Trim(args[end+2:], spaces)) != 0 {
		err = ErrExtraneousText
		return
	}

	text = args[1 : end+1]
	return
}

// parseDirective parses the arguments of a directive.
func (line *Line) parseDirective(args string) (err error) {
	switch {
	case len(args) == 0:
		err = ErrArgumentsMissing
	case line.Directive == DIR_DATA:
		line.Data, err = parseData(args)
	case line.Directive == DIR_STRING:
		line.Text, err = parseString(args)
	case strings.ContainsAny(args, spaces):
		err = ErrExtraneousText
	default:
		err = ValidateSymbol(args)
		line.Symbol = args
	}

	if err != nil {
		err = &ErrDirective{Directive: line.Directive, Err: err}
	}

	return
}

// ParseLine parses one logical source line. It never fails; malformed
// lines are returned as LINE_SYNTAX_ERROR with Err set.
func ParseLine(text string) (line Line) {
	text = strings.TrimLeft(text, spaces)
	if len(text) == 0 || text[0] == ';' {
		line.Kind = LINE_BLANK
		return
	}

	var err error
	defer func() {
		if err != nil {
			line = Line{Kind: LINE_SYNTAX_ERROR, Err: err}
		}
	}()

	colon := strings.IndexByte(text, ':')
	if colon >= 0 {
		if strings.IndexByte(text[colon+1:], ':') >= 0 {
			err = ErrColonRepeated
			return
		}
		label := text[:colon]
		err = ValidateSymbol(label)
		if err != nil {
			return
		}
		line.Label = label
		text = strings.TrimLeft(text[colon+1:], spaces)
	}

	keyword, args := cutSpace(text)

	if op, ok := opcodeMap[keyword]; ok {
		line.Kind = LINE_INSTRUCTION
		line.Opcode = op
		err = line.parseInstruction(args)
		return
	}

	if dir, ok := directiveMap[keyword]; ok {
		line.Kind = LINE_DIRECTIVE
		line.Directive = dir
		err = line.parseDirective(args)
		return
	}

	err = ErrKeywordUnknown(keyword)
	return
}
