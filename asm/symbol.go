// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"
	"maps"
	"slices"
)

// SymbolType is the kind of a symbol table entry.
type SymbolType int

//go:generate go tool stringer -linecomment -type=SymbolType
const (
	SYMBOL_DATA       = SymbolType(0) // data
	SYMBOL_CODE       = SymbolType(1) // code
	SYMBOL_EXTERNAL   = SymbolType(2) // external
	SYMBOL_ENTRY      = SymbolType(3) // entry
	SYMBOL_CODE_ENTRY = SymbolType(4) // code entry
	SYMBOL_DATA_ENTRY = SymbolType(5) // data entry
)

// IsEntry returns true for the entry, code entry and data entry types.
func (st SymbolType) IsEntry() bool {
	return st == SYMBOL_ENTRY || st == SYMBOL_CODE_ENTRY || st == SYMBOL_DATA_ENTRY
}

// IsData returns true for symbols that live in the data image.
func (st SymbolType) IsData() bool {
	return st == SYMBOL_DATA || st == SYMBOL_DATA_ENTRY
}

// withEntry returns the entry form of a code or data type.
func (st SymbolType) withEntry() SymbolType {
	switch st {
	case SYMBOL_CODE:
		return SYMBOL_CODE_ENTRY
	case SYMBOL_DATA:
		return SYMBOL_DATA_ENTRY
	}
	return st
}

// Symbol is a single symbol table entry.
type Symbol struct {
	Name    string
	Type    SymbolType
	Address int
	LineNo  int // Line of the definition or declaration.
}

// SymbolTable maps symbol names to their entries.
type SymbolTable map[string](*Symbol)

// Insert adds a new symbol. Names are unique.
func (st SymbolTable) Insert(sym Symbol) (err error) {
	_, ok := st[sym.Name]
	if ok {
		err = ErrSymbolDuplicate
		return
	}

	st[sym.Name] = &sym
	return
}

// Lookup finds a symbol by name.
func (st SymbolTable) Lookup(name string) (sym *Symbol, ok bool) {
	sym, ok = st[name]
	return
}

// Define binds a label to an address, as SYMBOL_CODE or SYMBOL_DATA.
// A pending .entry declaration is upgraded to the matching entry type.
func (st SymbolTable) Define(name string, kind SymbolType, address int, lineno int) (err error) {
	sym, ok := st[name]
	if !ok {
		err = st.Insert(Symbol{Name: name, Type: kind, Address: address, LineNo: lineno})
		return
	}

	if sym.Type != SYMBOL_ENTRY {
		err = &ErrSymbolConflict{Symbol: name, Was: sym.Type, LineNo: sym.LineNo, Now: kind}
		return
	}

	sym.Type = kind.withEntry()
	sym.Address = address
	sym.LineNo = lineno

	return
}

// Extern declares an external symbol. Declaring it twice returns
// ErrSymbolRedeclared, which is only a warning.
func (st SymbolTable) Extern(name string, lineno int) (err error) {
	sym, ok := st[name]
	switch {
	case !ok:
		err = st.Insert(Symbol{Name: name, Type: SYMBOL_EXTERNAL, LineNo: lineno})
	case sym.Type == SYMBOL_EXTERNAL:
		err = &ErrSymbolRedeclared{Symbol: name, Type: sym.Type, LineNo: sym.LineNo}
	default:
		err = &ErrSymbolConflict{Symbol: name, Was: sym.Type, LineNo: sym.LineNo, Now: SYMBOL_EXTERNAL}
	}

	return
}

// Entry declares an exported symbol. An undefined name becomes a
// SYMBOL_ENTRY placeholder until Define gives it an address. Declaring
// an entry twice returns ErrSymbolRedeclared, which is only a warning.
func (st SymbolTable) Entry(name string, lineno int) (err error) {
	sym, ok := st[name]
	switch {
	case !ok:
		err = st.Insert(Symbol{Name: name, Type: SYMBOL_ENTRY, LineNo: lineno})
	case sym.Type == SYMBOL_CODE || sym.Type == SYMBOL_DATA:
		sym.Type = sym.Type.withEntry()
	case sym.Type.IsEntry():
		err = &ErrSymbolRedeclared{Symbol: name, Type: sym.Type, LineNo: sym.LineNo}
	default:
		err = &ErrSymbolConflict{Symbol: name, Was: sym.Type, LineNo: sym.LineNo, Now: SYMBOL_ENTRY}
	}

	return
}

// Relocate moves every data symbol by offset.
func (st SymbolTable) Relocate(offset int) {
	for _, sym := range st {
		if sym.Type.IsData() {
			sym.Address += offset
		}
	}
}

// All returns an iterator over all symbols, sorted by name.
func (st SymbolTable) All() iter.Seq[*Symbol] {
	return func(yield func(sym *Symbol) bool) {
		for _, name := range slices.Sorted(maps.Keys(st)) {
			if !yield(st[name]) {
				return
			}
		}
	}
}

// OfType returns an iterator over the symbols matching a filter, sorted by name.
func (st SymbolTable) OfType(match func(kind SymbolType) bool) iter.Seq[*Symbol] {
	return func(yield func(sym *Symbol) bool) {
		for sym := range st.All() {
			if match(sym.Type) && !yield(sym) {
				return
			}
		}
	}
}

// Entries returns an iterator over the defined entry symbols, sorted by name.
func (st SymbolTable) Entries() iter.Seq[*Symbol] {
	return st.OfType(func(kind SymbolType) bool {
		return kind == SYMBOL_CODE_ENTRY || kind == SYMBOL_DATA_ENTRY
	})
}

// Undefined returns an iterator over the entry declarations that were
// never defined, sorted by name.
func (st SymbolTable) Undefined() iter.Seq[*Symbol] {
	return st.OfType(func(kind SymbolType) bool {
		return kind == SYMBOL_ENTRY
	})
}

// ExternUsage maps external symbols to the code addresses referencing them.
type ExternUsage map[string][]int

// Add records a reference to an external symbol.
func (eu ExternUsage) Add(name string, address int) {
	eu[name] = append(eu[name], address)
}

// All returns an iterator over every reference, sorted by symbol name,
// then in reference order.
func (eu ExternUsage) All() iter.Seq2[string, int] {
	return func(yield func(name string, address int) bool) {
		for _, name := range slices.Sorted(maps.Keys(eu)) {
			for _, address := range eu[name] {
				if !yield(name, address) {
					return
				}
			}
		}
	}
}
