package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSymbol(t *testing.T) {
	assert := assert.New(t)

	valid := []string{"A", "main", "L1", "x0y1z2", "A" + strings.Repeat("b", 29)}
	for _, name := range valid {
		assert.NoError(ValidateSymbol(name), name)
	}

	invalid := []struct {
		name string
		err  error
	}{
		{"", ErrSymbolStart},
		{"1abc", ErrSymbolStart},
		{"_abc", ErrSymbolStart},
		{"a_b", ErrSymbolCharacter},
		{"ab-c", ErrSymbolCharacter},
		{"héllo", ErrSymbolCharacter},
		{"A" + strings.Repeat("b", 30), ErrSymbolLength},
	}
	for _, tc := range invalid {
		err := ValidateSymbol(tc.name)
		assert.ErrorIs(err, tc.err, tc.name)
		var symerr *ErrSymbolInvalid
		if assert.ErrorAs(err, &symerr) {
			assert.Equal(tc.name, symerr.Symbol)
		}
	}
}

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Operand{
		"#0":     {Mode: MODE_CONSTANT, Value: 0},
		"#-8192": {Mode: MODE_CONSTANT, Value: -8192},
		"#8191":  {Mode: MODE_CONSTANT, Value: 8191},
		"#+12":   {Mode: MODE_CONSTANT, Value: 12},
		"r0":     {Mode: MODE_REGISTER, Value: 0},
		"r7":     {Mode: MODE_REGISTER, Value: 7},
		"rx":     {Mode: MODE_SYMBOL, Symbol: "rx"},
		"LOOP":   {Mode: MODE_SYMBOL, Symbol: "LOOP"},
	}
	for text, expected := range table {
		op, err := ParseOperand(text)
		assert.NoError(err, text)
		assert.Equal(expected, op, text)
	}

	failing := []struct {
		text string
		err  error
	}{
		{"", ErrOperandMissing},
		{"#", ErrNumberInvalid},
		{"#abc", ErrNumberInvalid},
		{"#1.5", ErrNumberInvalid},
		{"#8192", ErrNumberMaximum},
		{"#-8193", ErrNumberMinimum},
		{"#99999999999", ErrNumberMaximum},
		{"#-99999999999", ErrNumberMinimum},
		{"r8", ErrNumberMaximum},
		{"r1x", ErrNumberInvalid},
		{"9lives", ErrSymbolStart},
	}
	for _, tc := range failing {
		_, err := ParseOperand(tc.text)
		assert.ErrorIs(err, tc.err, tc.text)
	}
}

func TestParseLineBlank(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"", "   ", "\t", "; comment", "   ; indented comment"} {
		line := ParseLine(text)
		assert.Equal(LINE_BLANK, line.Kind, text)
		assert.NoError(line.Err)
	}
}

func TestParseLineInstruction(t *testing.T) {
	assert := assert.New(t)

	line := ParseLine("MAIN: mov r1, r2")
	assert.NoError(line.Err)
	assert.Equal(LINE_INSTRUCTION, line.Kind)
	assert.Equal("MAIN", line.Label)
	assert.Equal(OP_MOV, line.Opcode)
	assert.False(line.Indexed)
	assert.Equal([]Operand{
		{Mode: MODE_REGISTER, Value: 1},
		{Mode: MODE_REGISTER, Value: 2},
	}, line.Operands)
	assert.Equal(2, line.Size())

	line = ParseLine("\tcmp #-3 ,LEN")
	assert.NoError(line.Err)
	assert.Equal("", line.Label)
	assert.Equal(OP_CMP, line.Opcode)
	assert.Equal([]Operand{
		{Mode: MODE_CONSTANT, Value: -3},
		{Mode: MODE_SYMBOL, Symbol: "LEN"},
	}, line.Operands)
	assert.Equal(3, line.Size())

	line = ParseLine("inc r3")
	assert.NoError(line.Err)
	assert.Equal([]Operand{{Mode: MODE_REGISTER, Value: 3}}, line.Operands)
	assert.Equal(2, line.Size())

	line = ParseLine("END: stop")
	assert.NoError(line.Err)
	assert.Equal(OP_STOP, line.Opcode)
	assert.Equal(GROUP_C, line.Opcode.Group())
	assert.Equal(0, len(line.Operands))
	assert.Equal(1, line.Size())
}

func TestParseLineIndexed(t *testing.T) {
	assert := assert.New(t)

	line := ParseLine("jmp L1(#5,r3)")
	assert.NoError(line.Err)
	assert.True(line.Indexed)
	assert.Equal("L1", line.Symbol)
	assert.Equal([]Operand{
		{Mode: MODE_CONSTANT, Value: 5},
		{Mode: MODE_REGISTER, Value: 3},
	}, line.Operands)
	assert.Equal(4, line.Size())

	line = ParseLine("bne LOOP(r1,r2)")
	assert.NoError(line.Err)
	assert.True(line.Indexed)
	assert.Equal(3, line.Size())

	line = ParseLine("jsr FN(X, Y)")
	assert.NoError(line.Err)
	assert.Equal([]Operand{
		{Mode: MODE_SYMBOL, Symbol: "X"},
		{Mode: MODE_SYMBOL, Symbol: "Y"},
	}, line.Operands)
	assert.Equal(4, line.Size())
}

func TestParseLineDirective(t *testing.T) {
	assert := assert.New(t)

	line := ParseLine("ARR: .data 5, -3,17")
	assert.NoError(line.Err)
	assert.Equal(LINE_DIRECTIVE, line.Kind)
	assert.Equal(DIR_DATA, line.Directive)
	assert.Equal("ARR", line.Label)
	assert.Equal([]int{5, -3, 17}, line.Data)
	assert.Equal(3, line.DataSize())
	assert.Equal(0, line.Size())

	line = ParseLine(`STR: .string "hello world"`)
	assert.NoError(line.Err)
	assert.Equal(DIR_STRING, line.Directive)
	assert.Equal("hello world", line.Text)
	assert.Equal(12, line.DataSize())

	line = ParseLine(`.string ""`)
	assert.NoError(line.Err)
	assert.Equal("", line.Text)
	assert.Equal(1, line.DataSize())

	line = ParseLine(".extern X")
	assert.NoError(line.Err)
	assert.Equal(DIR_EXTERN, line.Directive)
	assert.Equal("X", line.Symbol)

	line = ParseLine("  .entry MAIN  ")
	assert.NoError(line.Err)
	assert.Equal(DIR_ENTRY, line.Directive)
	assert.Equal("MAIN", line.Symbol)

	line = ParseLine(".data " + strings.Repeat("1,", DATA_MAX_VALUES-1) + "1")
	assert.NoError(line.Err)
	assert.Equal(DATA_MAX_VALUES, line.DataSize())
}

func TestParseLineErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		err  error
	}{
		{"A: B: stop", ErrColonRepeated},
		{"1A: stop", ErrSymbolStart},
		{"mov", ErrArgumentsMissing},
		{"mov r1", ErrSeparatorMissing},
		{"mov r1 r2, r3", ErrExtraneousText},
		{"mov r1, r2, r3", ErrExtraneousText},
		{"mov r1,", ErrOperandMissing},
		{"mov #9000, r1", ErrNumberMaximum},
		{"inc r1 r2", ErrExtraneousText},
		{"inc r1, r2", ErrExtraneousText},
		{"jmp L1 (r1,r3)", ErrBracketSpace},
		{"jmp L1)r1,r3(", ErrBracketOrder},
		{"jmp L1(r1,r3", ErrBracketClose},
		{"jmp L1r1,r3)", ErrBracketOpen},
		{"jmp L1(r1,r3) x", ErrExtraneousText},
		{"jmp 1L(r1,r3)", ErrSymbolStart},
		{"jmp L1(r1)", ErrSeparatorMissing},
		{"stop now", ErrExtraneousText},
		{".data", ErrArgumentsMissing},
		{".data 1,,2", ErrDataMissing},
		{".data 1,", ErrDataMissing},
		{".data 1 2", ErrSeparatorMissing},
		{".data 8192", ErrNumberMaximum},
		{".data -8193", ErrNumberMinimum},
		{".data x", ErrNumberInvalid},
		{".string hi", ErrQuoteOpen},
		{`.string "hi`, ErrQuoteClose},
		{`.string "hi" there`, ErrExtraneousText},
		{".extern X Y", ErrExtraneousText},
		{".entry 9", ErrSymbolStart},
		{".entry", ErrArgumentsMissing},
	}

	for _, tc := range table {
		line := ParseLine(tc.text)
		assert.Equal(LINE_SYNTAX_ERROR, line.Kind, tc.text)
		assert.ErrorIs(line.Err, tc.err, tc.text)
		assert.Equal("", line.Label, tc.text)
	}

	line := ParseLine(".data " + strings.Repeat("1,", DATA_MAX_VALUES) + "1")
	assert.ErrorIs(line.Err, ErrDataTooMany)

	line = ParseLine("foo r1")
	var unknown ErrKeywordUnknown
	if assert.ErrorAs(line.Err, &unknown) {
		assert.Equal(ErrKeywordUnknown("foo"), unknown)
	}

	line = ParseLine("mov r1")
	var instr *ErrInstruction
	if assert.ErrorAs(line.Err, &instr) {
		assert.Equal(OP_MOV, instr.Opcode)
	}
	assert.Equal("expected separator ',' for instruction 'mov'", line.Err.Error())

	line = ParseLine(".string hi")
	var dir *ErrDirective
	if assert.ErrorAs(line.Err, &dir) {
		assert.Equal(DIR_STRING, dir.Directive)
	}
}

func TestParseLineIdempotent(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"MAIN: mov r1, r2",
		"      .data 5, -3, 17",
		`LEN:  .string "hi"`,
		"jmp L1(#5,r3)",
		"mov r1",
		"bogus",
	}

	for _, text := range program {
		assert.Equal(ParseLine(text), ParseLine(text), text)
	}

	assert.True(errors.Is(ParseLine("bogus").Err, ErrKeywordUnknown("bogus")))
}
