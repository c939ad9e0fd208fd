// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"log"
)

// declare handles the symbol of an .extern or .entry directive.
func (asm *Assembler) declare(symbols SymbolTable, line *Line, lineno int) (err error) {
	if len(line.Label) != 0 {
		asm.warn(lineno, &ErrDirective{Directive: line.Directive, Err: ErrLabelIgnored})
	}

	switch line.Directive {
	case DIR_EXTERN:
		err = symbols.Extern(line.Symbol, lineno)
	case DIR_ENTRY:
		err = symbols.Entry(line.Symbol, lineno)
	}

	var redeclared *ErrSymbolRedeclared
	if errors.As(err, &redeclared) {
		asm.warn(lineno, err)
		err = nil
	}

	return
}

// FirstPass builds the symbol table of a source, and computes the size
// of its code and data images.
func (asm *Assembler) FirstPass(lines []string) (symbols SymbolTable, layout Layout, err error) {
	var errs []error

	symbols = SymbolTable{}
	ic := BASE_ADDRESS
	dc := 0

	for n, text := range lines {
		lineno := n + 1

		if asm.Verbose {
			log.Printf("%v:%v: [%v:%v] %v", asm.File, lineno, ic, dc, text)
		}

		line := ParseLine(text)

		switch line.Kind {
		case LINE_SYNTAX_ERROR:
			errs = append(errs, asm.fail(lineno, line.Err))
		case LINE_INSTRUCTION:
			if len(line.Label) != 0 {
				err = symbols.Define(line.Label, SYMBOL_CODE, ic, lineno)
				if err != nil {
					errs = append(errs, asm.fail(lineno, err))
				}
			}
			ic += line.Size()
		case LINE_DIRECTIVE:
			switch line.Directive {
			case DIR_EXTERN, DIR_ENTRY:
				err = asm.declare(symbols, &line, lineno)
				if err != nil {
					errs = append(errs, asm.fail(lineno, err))
				}
			case DIR_DATA, DIR_STRING:
				if len(line.Label) == 0 {
					asm.warn(lineno, ErrDataUnlabeled)
				} else {
					err = symbols.Define(line.Label, SYMBOL_DATA, dc, lineno)
					if err != nil {
						errs = append(errs, asm.fail(lineno, err))
					}
				}
				dc += line.DataSize()
			}
		}
	}

	// Data follows the code in the memory image.
	symbols.Relocate(ic)

	for sym := range symbols.Undefined() {
		errs = append(errs, asm.fail(sym.LineNo, ErrEntryUndefined(sym.Name)))
	}

	layout = Layout{Code: ic, Data: dc}
	err = errors.Join(errs...)

	return
}
