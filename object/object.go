// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package object writes the object, entry and extern files of an
// assembled translation unit.
package object

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/ezrec/asm14/asm"
)

const (
	EXT_OBJECT = ".ob"  // Object file: memory image.
	EXT_ENTRY  = ".ent" // Entry file: exported symbols.
	EXT_EXTERN = ".ext" // Extern file: external symbol references.
)

// WriteObject writes the memory image of a translation unit. The header
// holds the code and data word counts; a blank line always follows the
// code words, even when there are no data words.
func WriteObject(output io.Writer, tu *asm.TranslationUnit) (err error) {
	w := bufio.NewWriter(output)

	fmt.Fprintf(w, "%d\t%d\n", len(tu.Code), len(tu.Data))
	for _, word := range tu.Code {
		fmt.Fprintln(w, word.Glyphs())
	}
	fmt.Fprintln(w)
	for _, word := range tu.Data {
		fmt.Fprintln(w, word.Glyphs())
	}

	err = w.Flush()
	return
}

// WriteEntries writes the exported symbols of a translation unit, sorted by name.
func WriteEntries(output io.Writer, tu *asm.TranslationUnit) (err error) {
	w := bufio.NewWriter(output)

	for sym := range tu.Entries() {
		fmt.Fprintf(w, "%s\t%d\n", sym.Name, sym.Address)
	}

	err = w.Flush()
	return
}

// WriteExterns writes every reference to an external symbol.
func WriteExterns(output io.Writer, tu *asm.TranslationUnit) (err error) {
	w := bufio.NewWriter(output)

	for name, address := range tu.Externs.All() {
		fmt.Fprintf(w, "%s\t%d\n", name, address)
	}

	err = w.Flush()
	return
}

// HasEntries returns true if the translation unit exports any symbol.
func HasEntries(tu *asm.TranslationUnit) bool {
	for range tu.Entries() {
		return true
	}
	return false
}

// HasExterns returns true if the translation unit references any external symbol.
func HasExterns(tu *asm.TranslationUnit) bool {
	return len(tu.Externs) != 0
}

// create writes a single file.
func create(filesys CreateFS, name string, tu *asm.TranslationUnit,
	writer func(io.Writer, *asm.TranslationUnit) error) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	err = writer(file, tu)
	err = errors.Join(err, file.Close())
	return
}

// remove removes a file, if it exists.
func remove(filesys CreateFS, name string) (err error) {
	err = filesys.Remove(name)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	}
	return
}

// Write writes the output files of a translation unit: <base>.ob always,
// <base>.ent if it exports symbols, and <base>.ext if it references
// external symbols. Entry or extern files left over from an earlier run
// are removed.
func Write(filesys CreateFS, base string, tu *asm.TranslationUnit) (err error) {
	if HasExterns(tu) {
		err = create(filesys, base+EXT_EXTERN, tu, WriteExterns)
	} else {
		err = remove(filesys, base+EXT_EXTERN)
	}
	if err != nil {
		return
	}

	if HasEntries(tu) {
		err = create(filesys, base+EXT_ENTRY, tu, WriteEntries)
	} else {
		err = remove(filesys, base+EXT_ENTRY)
	}
	if err != nil {
		return
	}

	err = create(filesys, base+EXT_OBJECT, tu, WriteObject)
	return
}
