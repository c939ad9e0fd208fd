package preasm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func expand(program []string) (string, error) {
	var sb strings.Builder
	err := Expand(strings.NewReader(strings.Join(program, "\n")), &sb)
	return sb.String(), err
}

func TestExpandPlain(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"MAIN: mov r1, r2",
		"; comment",
		"",
		"      stop",
	}

	out, err := expand(program)
	assert.NoError(err)
	assert.Equal(strings.Join(program, "\n")+"\n", out)

	out, err = expand(nil)
	assert.NoError(err)
	assert.Equal("", out)
}

func TestExpandMacro(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"MAIN: mov r1, r2",
		"mcr m1",
		"  inc r2",
		"  bne LOOP(r1,r2)",
		"endmcr",
		"LOOP: m1",
		"  m1  ",
		"stop",
	}

	expected := []string{
		"MAIN: mov r1, r2",
		"LOOP: m1",
		"  inc r2",
		"  bne LOOP(r1,r2)",
		"stop",
	}

	out, err := expand(program)
	assert.NoError(err)
	assert.Equal(strings.Join(expected, "\n")+"\n", out)
}

func TestExpandMacroTable(t *testing.T) {
	assert := assert.New(t)

	pp := &Preprocessor{}

	program := []string{
		"mcr empty",
		"endmcr",
		"mcr two",
		"  clr r1",
		"  clr r2",
		"endmcr",
		"empty",
		"two",
		"two",
	}

	var sb strings.Builder
	err := pp.Expand(strings.NewReader(strings.Join(program, "\n")), &sb)
	assert.NoError(err)
	assert.Equal("  clr r1\n  clr r2\n  clr r1\n  clr r2\n", sb.String())

	if assert.Equal(2, len(pp.Macro)) {
		assert.Equal(1, pp.Macro["empty"].LineNo)
		assert.Equal(0, len(pp.Macro["empty"].Lines))
		assert.Equal(3, pp.Macro["two"].LineNo)
		assert.Equal([]string{"  clr r1", "  clr r2"}, pp.Macro["two"].Lines)
	}

	// Macros do not survive to the next expansion.
	sb.Reset()
	err = pp.Expand(strings.NewReader("two"), &sb)
	assert.NoError(err)
	assert.Equal("two\n", sb.String())
	assert.Equal(0, len(pp.Macro))
}

func TestExpandErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		program []string
		lineno  int
		err     error
	}{
		{[]string{"mcr a", "mcr b", "endmcr"}, 2, ErrMacroNesting},
		{[]string{"stop", "endmcr"}, 2, ErrMacroLonelyEndm},
		{[]string{"stop", "mcr a", "stop"}, 2, ErrMacroLonely},
		{[]string{"mcr a", "endmcr", "mcr a", "endmcr"}, 3, ErrMacroDuplicate},
		{[]string{"mcr"}, 1, ErrMacroSyntax},
		{[]string{"mcr a b"}, 1, ErrMacroSyntax},
		{[]string{"mcr a", "endmcr a"}, 2, ErrMacroSyntax},
		{[]string{"mcr mov"}, 1, ErrMacroKeyword},
		{[]string{"mcr endmcr"}, 1, ErrMacroKeyword},
		{[]string{"stop", "stop", "mov r1," + strings.Repeat(" ", LINE_MAX_LEN) + "r2"}, 3, ErrLineLength},
	}

	for _, tc := range table {
		_, err := expand(tc.program)
		assert.ErrorIs(err, tc.err, tc.program)
		var syntax *ErrSyntax
		if assert.ErrorAs(err, &syntax) {
			assert.Equal(tc.lineno, syntax.LineNo, tc.program)
		}
	}

	_, err := expand([]string{"mcr 1abc"})
	var syntax *ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Error(errors.Unwrap(err))

	_, err = expand([]string{"x" + strings.Repeat("y", LINE_MAX_LEN-1)})
	assert.NoError(err)
}
