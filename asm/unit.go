// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"
	"slices"

	"github.com/ezrec/asm14/internal"
)

// TranslationUnit is the assembled form of a single source file.
type TranslationUnit struct {
	Symbols SymbolTable // Symbols defined or declared by the file.
	Code    []Word      // Code words, starting at BASE_ADDRESS.
	Data    []Word      // Data words, following the code words.
	Externs ExternUsage // References to external symbols.
}

// NewTranslationUnit creates an empty translation unit.
func NewTranslationUnit() *TranslationUnit {
	return &TranslationUnit{
		Symbols: SymbolTable{},
		Externs: ExternUsage{},
	}
}

// NextAddress is the address of the next code word to be emitted.
func (tu *TranslationUnit) NextAddress() int {
	return BASE_ADDRESS + len(tu.Code)
}

// Words returns an iterator over the memory image, code then data.
func (tu *TranslationUnit) Words() iter.Seq[Word] {
	return internal.IterSeqConcat(slices.Values(tu.Code), slices.Values(tu.Data))
}

// Image returns an iterator over the memory image and the address of each word.
func (tu *TranslationUnit) Image() iter.Seq2[int, Word] {
	return internal.IterSeqNumber(BASE_ADDRESS, tu.Words())
}

// Entries returns an iterator over the exported symbols, sorted by name.
func (tu *TranslationUnit) Entries() iter.Seq[*Symbol] {
	return tu.Symbols.Entries()
}

// reference resolves a symbol operand into its operand word, recording
// the usage of external symbols.
func (tu *TranslationUnit) reference(name string) (word Word, err error) {
	sym, ok := tu.Symbols.Lookup(name)
	if !ok {
		err = ErrSymbolUndefined(name)
		return
	}

	if sym.Type == SYMBOL_EXTERNAL {
		tu.Externs.Add(name, tu.NextAddress())
		word = MakeWordExternal()
		return
	}

	word = MakeWordAddress(sym.Address)
	return
}
