// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
)

// Layout holds the final pass 1 counters.
type Layout struct {
	Code int // Instruction counter; the first address after the code.
	Data int // Data counter; the number of data words.
}

// Assembler is a two pass assembler for a single source file.
//
// Pass 1 builds the symbol table; pass 2 re-parses every line and emits the
// code and data words. Both passes scan the whole file so that every
// diagnostic is reported, but pass 2 only runs if pass 1 was error free.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	File    string // Source file name, for diagnostics.

	// If set, called for each diagnostic as it is raised.
	Report func(diag *Diagnostic)

	Diagnostics []*Diagnostic // Diagnostics of the last Assemble.
}

// report records a diagnostic.
func (asm *Assembler) report(lineno int, severity Severity, err error) (diag *Diagnostic) {
	diag = &Diagnostic{File: asm.File, LineNo: lineno, Severity: severity, Err: err}
	asm.Diagnostics = append(asm.Diagnostics, diag)
	if asm.Report != nil {
		asm.Report(diag)
	}
	return
}

// warn records a warning.
func (asm *Assembler) warn(lineno int, err error) {
	asm.report(lineno, SEVERITY_WARNING, err)
}

// fail records an error, and returns it.
func (asm *Assembler) fail(lineno int, err error) error {
	return asm.report(lineno, SEVERITY_ERROR, err)
}

// Warnings returns the number of warnings raised.
func (asm *Assembler) Warnings() (count int) {
	for _, diag := range asm.Diagnostics {
		if diag.Severity == SEVERITY_WARNING {
			count++
		}
	}
	return
}

// ReadLines reads all logical lines of a source.
func ReadLines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	return
}

// Assemble translates a macro expanded source into a translation unit.
//
// The returned error joins every error diagnostic; warnings are only
// available in Diagnostics.
func (asm *Assembler) Assemble(input io.Reader) (tu *TranslationUnit, err error) {
	asm.Diagnostics = nil

	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	symbols, layout, err := asm.FirstPass(lines)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%v: code %d words, data %d words", asm.File, layout.Code-BASE_ADDRESS, layout.Data)
	}

	unit := NewTranslationUnit()
	unit.Symbols = symbols

	err = asm.SecondPass(lines, unit)
	if err != nil {
		return
	}

	if len(unit.Code) != layout.Code-BASE_ADDRESS || len(unit.Data) != layout.Data {
		err = asm.fail(len(lines), ErrLayoutMismatch)
		return
	}

	tu = unit
	return
}
