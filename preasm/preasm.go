// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package preasm expands the mcr/endmcr macros of an assembly source.
package preasm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/asm14/asm"
)

const (
	LINE_MAX_LEN = 80 // Longest source line.

	KEYWORD_MCR    = "mcr"    // Opens a macro definition.
	KEYWORD_ENDMCR = "endmcr" // Closes a macro definition.
)

// Macro represents a macro definition.
type Macro struct {
	Name   string
	LineNo int      // Line number of the 'mcr' line.
	Lines  []string // Lines of macro text to expand.
}

// Preprocessor expands the macros of a source.
type Preprocessor struct {
	Verbose bool                // If set, verbosely logs the expansion.
	Macro   map[string](*Macro) // Macros of the last expansion.
}

// Expand expands the macros of input into output, with a fresh Preprocessor.
func Expand(input io.Reader, output io.Writer) (err error) {
	pp := &Preprocessor{}
	err = pp.Expand(input, output)
	return
}

// define validates the name of a new macro.
func (pp *Preprocessor) define(words []string) (name string, err error) {
	if len(words) != 2 {
		err = ErrMacroSyntax
		return
	}

	name = words[1]
	err = asm.ValidateSymbol(name)
	if err != nil {
		return
	}

	if asm.IsKeyword(name) || name == KEYWORD_MCR || name == KEYWORD_ENDMCR {
		err = ErrMacroKeyword
		return
	}

	_, ok := pp.Macro[name]
	if ok {
		err = ErrMacroDuplicate
		return
	}

	return
}

// Expand expands the macros of input into output. Macro definitions are
// removed, and a line holding only the name of a macro is replaced by
// its body. Expansion stops at the first error.
func (pp *Preprocessor) Expand(input io.Reader, output io.Writer) (err error) {
	scanner := bufio.NewScanner(input)
	writer := bufio.NewWriter(output)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if pp.Macro == nil {
		pp.Macro = make(map[string](*Macro))
	}
	clear(pp.Macro)

	emit := func(text string) {
		writer.WriteString(text)
		writer.WriteByte('\n')
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if pp.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(line) > LINE_MAX_LEN {
			err = ErrLineLength
			return
		}

		words := strings.Fields(line)

		// mcr NAME
		if len(words) > 0 && words[0] == KEYWORD_MCR {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			var name string
			name, err = pp.define(words)
			if err != nil {
				return
			}
			macro = &Macro{Name: name, LineNo: lineno}
			pp.Macro[name] = macro
			continue
		}

		if len(words) > 0 && words[0] == KEYWORD_ENDMCR {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			if len(words) != 1 {
				err = ErrMacroSyntax
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		if len(words) == 1 {
			call, ok := pp.Macro[words[0]]
			if ok {
				for _, text := range call.Lines {
					emit(text)
				}
				continue
			}
		}

		emit(line)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		lineno = macro.LineNo
		line = KEYWORD_MCR + " " + macro.Name
		err = ErrMacroLonely
		return
	}

	err = writer.Flush()
	return
}
