// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package driver runs the macro preprocessor, the assembler and the object
// writer over a batch of source files.
package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/ezrec/asm14/asm"
	"github.com/ezrec/asm14/object"
	"github.com/ezrec/asm14/preasm"
	"github.com/ezrec/asm14/term"
)

const (
	EXT_SOURCE   = ".as" // Assembly source.
	EXT_EXPANDED = ".am" // Macro expanded source.
)

// Driver assembles source files. Each file is processed on its own, with
// a fresh translation unit.
type Driver struct {
	Verbose      bool            // If set, enables verbose logging.
	Color        bool            // If set, colours the severity of diagnostics.
	KeepExpanded bool            // If set, keeps the .am file of every source.
	Flat         bool            // If set, output files are named by the base name only.
	Input        fs.FS           // Filesystem of the .as sources.
	Output       object.CreateFS // Filesystem of the generated files.
	Diagnostics  io.Writer       // Diagnostic output.
}

// NewDriver creates a driver reading from input and writing to output.
// Diagnostics go to the standard error.
func NewDriver(input fs.FS, output object.CreateFS) (drv *Driver) {
	drv = &Driver{
		KeepExpanded: true,
		Input:        input,
		Output:       output,
		Diagnostics:  os.Stderr,
	}

	return
}

// Report prints a diagnostic.
func (drv *Driver) Report(diag *asm.Diagnostic) {
	ansi := term.ANSI_RED
	if diag.Severity == asm.SEVERITY_WARNING {
		ansi = term.ANSI_YELLOW
	}

	severity := term.Paint(drv.Color, ansi, f(diag.Severity.String()))
	fmt.Fprintf(drv.Diagnostics, "%v:%d: %v: %v\n", diag.File, diag.LineNo, severity, diag.Err)
}

// fail prints a diagnostic for a file that could not be processed.
func (drv *Driver) fail(err error) error {
	severity := term.Paint(drv.Color, term.ANSI_RED, f(asm.SEVERITY_ERROR.String()))
	fmt.Fprintf(drv.Diagnostics, "%v: %v\n", severity, err)
	return err
}

// outputName returns the name of a generated file.
func (drv *Driver) outputName(base string) string {
	if drv.Flat {
		return path.Base(base)
	}
	return base
}

// preprocess expands the macros of <base>.as.
func (drv *Driver) preprocess(base string) (expanded []byte, err error) {
	source := base + EXT_SOURCE

	file, err := drv.Input.Open(source)
	if err != nil {
		err = drv.fail(&ErrFile{File: source, Err: err})
		return
	}
	defer file.Close()

	var buff bytes.Buffer
	pp := &preasm.Preprocessor{Verbose: drv.Verbose}
	err = pp.Expand(file, &buff)

	var syntax *preasm.ErrSyntax
	if errors.As(err, &syntax) {
		drv.Report(&asm.Diagnostic{
			File:     source,
			LineNo:   syntax.LineNo,
			Severity: asm.SEVERITY_ERROR,
			Err:      syntax.Err,
		})
		return
	}
	if err != nil {
		err = drv.fail(&ErrFile{File: source, Err: err})
		return
	}

	expanded = buff.Bytes()
	return
}

// writeExpanded writes the macro expanded source.
func (drv *Driver) writeExpanded(name string, expanded []byte) (err error) {
	file, err := drv.Output.Create(name)
	if err != nil {
		return
	}

	_, err = file.Write(expanded)
	err = errors.Join(err, file.Close())
	return
}

// Run assembles <base>.as: the macro expanded source is written to
// <base>.am, and on success the object files are written. Diagnostics
// are printed as they are found.
func (drv *Driver) Run(base string) (err error) {
	name := drv.outputName(base)
	expandedName := name + EXT_EXPANDED

	expanded, err := drv.preprocess(base)
	if err != nil {
		return
	}

	err = drv.writeExpanded(expandedName, expanded)
	if err != nil {
		err = drv.fail(&ErrFile{File: expandedName, Err: err})
		return
	}

	if !drv.KeepExpanded {
		defer func() {
			rm_err := drv.Output.Remove(expandedName)
			if rm_err != nil && err == nil {
				err = drv.fail(&ErrFile{File: expandedName, Err: rm_err})
			}
		}()
	}

	assembler := &asm.Assembler{
		Verbose: drv.Verbose,
		File:    expandedName,
		Report:  drv.Report,
	}

	tu, err := assembler.Assemble(bytes.NewReader(expanded))
	if err != nil {
		return
	}

	if drv.Verbose {
		log.Printf("%v: %d code words, %d data words, %d warnings",
			expandedName, len(tu.Code), len(tu.Data), assembler.Warnings())
		for address, word := range tu.Image() {
			log.Printf("%v: %04d %v", expandedName, address, word.Glyphs())
		}
	}

	err = object.Write(drv.Output, name, tu)
	if err != nil {
		err = drv.fail(&ErrFile{File: name + object.EXT_OBJECT, Err: err})
		return
	}

	return
}

// RunAll runs every base in order. A failed file does not stop the batch.
// Returns the number of failed files.
func (drv *Driver) RunAll(bases []string) (failed int) {
	for _, base := range bases {
		err := drv.Run(base)
		if err != nil {
			failed++
		}
	}

	if drv.Verbose {
		log.Printf("%d files, %d failed", len(bases), failed)
	}

	return
}
