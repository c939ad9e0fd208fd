// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

const (
	BASE_ADDRESS    = 100    // Address of the first code word.
	WORD_BITS       = 14     // Bits in a machine word.
	WORD_MASK       = 0x3fff // Mask of the machine word bits.
	REGISTER_COUNT  = 8      // General purpose registers r0-r7.
	CONSTANT_MIN    = -8192  // Smallest immediate or data value.
	CONSTANT_MAX    = 8191   // Largest immediate or data value.
	SYMBOL_MAX_LEN  = 30     // Longest symbol name.
	DATA_MAX_VALUES = 80     // Most values in one .data directive.

	GLYPH_ZERO = '.' // Object file glyph for a 0 bit.
	GLYPH_ONE  = '/' // Object file glyph for a 1 bit.
)

// Opcode is an instruction tag.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MOV  = Opcode(0)  // mov
	OP_CMP  = Opcode(1)  // cmp
	OP_ADD  = Opcode(2)  // add
	OP_SUB  = Opcode(3)  // sub
	OP_LEA  = Opcode(4)  // lea
	OP_NOT  = Opcode(5)  // not
	OP_CLR  = Opcode(6)  // clr
	OP_INC  = Opcode(7)  // inc
	OP_DEC  = Opcode(8)  // dec
	OP_JMP  = Opcode(9)  // jmp
	OP_BNE  = Opcode(10) // bne
	OP_RED  = Opcode(11) // red
	OP_PRN  = Opcode(12) // prn
	OP_JSR  = Opcode(13) // jsr
	OP_RTS  = Opcode(14) // rts
	OP_STOP = Opcode(15) // stop
)

// Group is the operand shape of an instruction.
type Group int

//go:generate go tool stringer -linecomment -type=Group
const (
	GROUP_A = Group(0) // A
	GROUP_B = Group(1) // B
	GROUP_C = Group(2) // C
)

// Group returns the operand shape group of the opcode.
func (op Opcode) Group() Group {
	switch {
	case op <= OP_LEA:
		return GROUP_A
	case op <= OP_JSR:
		return GROUP_B
	default:
		return GROUP_C
	}
}

// Mode is an addressing mode tag.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_CONSTANT = Mode(0) // constant
	MODE_SYMBOL   = Mode(1) // symbol
	MODE_INDEXED  = Mode(2) // indexed
	MODE_REGISTER = Mode(3) // register
)

// Are is the Absolute/Relocatable/External tag of an operand word.
type Are int

//go:generate go tool stringer -linecomment -type=Are
const (
	ARE_ABSOLUTE    = Are(0) // A
	ARE_EXTERNAL    = Are(1) // E
	ARE_RELOCATABLE = Are(2) // R
)

// Word is a single 14-bit machine word.
type Word uint16

// makeWord packs a value above the A/R/E bits.
func makeWord(value int, are Are) Word {
	return Word(((value << 2) | int(are)) & WORD_MASK)
}

// MakeWordOpcode creates the first word of a direct form instruction.
// Single operand instructions pass MODE_CONSTANT as the source mode.
func MakeWordOpcode(op Opcode, src, dst Mode) Word {
	return Word((int(op)<<6)|(int(src)<<4)|(int(dst)<<2)) & WORD_MASK
}

// MakeWordIndexed creates the first word of a LABEL(first,second) instruction.
func MakeWordIndexed(op Opcode, first, second Mode) Word {
	return Word((int(first)<<12)|(int(second)<<10)|(int(op)<<6)|(int(MODE_INDEXED)<<2)) & WORD_MASK
}

// MakeWordRegisters creates a register operand word. The left register
// sits at bit 8, the right register at bit 2.
func MakeWordRegisters(left, right int) Word {
	return Word(((left&7)<<8)|((right&7)<<2)) & WORD_MASK
}

// MakeWordConstant creates an immediate operand word.
func MakeWordConstant(value int) Word {
	return makeWord(value, ARE_ABSOLUTE)
}

// MakeWordAddress creates an operand word for a symbol defined in this file.
func MakeWordAddress(address int) Word {
	return makeWord(address, ARE_RELOCATABLE)
}

// MakeWordExternal creates the placeholder operand word of an external symbol.
func MakeWordExternal() Word {
	return Word(ARE_EXTERNAL)
}

// MakeWordData creates a data word, stored verbatim in two's complement.
func MakeWordData(value int) Word {
	return Word(value & WORD_MASK)
}

// Opcode returns the instruction tag of a first word.
func (w Word) Opcode() Opcode {
	return Opcode((w >> 6) & 0xf)
}

// Modes decodes the source and destination modes of a first word,
// for inspection.
func (w Word) Modes() (src, dst Mode) {
	src = Mode((w >> 4) & 0x3)
	dst = Mode((w >> 2) & 0x3)
	return
}

// IndexModes decodes the index operand modes of an indexed first word,
// for inspection.
func (w Word) IndexModes() (first, second Mode) {
	first = Mode((w >> 12) & 0x3)
	second = Mode((w >> 10) & 0x3)
	return
}

// Registers decodes a register operand word, for inspection.
func (w Word) Registers() (left, right int) {
	left = int((w >> 8) & 0x7)
	right = int((w >> 2) & 0x7)
	return
}

// Are returns the A/R/E tag of an operand word.
func (w Word) Are() Are {
	return Are(w & 0x3)
}

// Value returns the signed 12-bit payload of an operand word, for inspection.
func (w Word) Value() int {
	value := int(w>>2) & 0xfff
	if value&0x800 != 0 {
		value -= 0x1000
	}
	return value
}

// Glyphs renders the word most significant bit first, one glyph per bit.
func (w Word) Glyphs() string {
	var sb strings.Builder
	sb.Grow(WORD_BITS)
	for bit := WORD_BITS - 1; bit >= 0; bit-- {
		if (w>>bit)&1 != 0 {
			sb.WriteByte(GLYPH_ONE)
		} else {
			sb.WriteByte(GLYPH_ZERO)
		}
	}
	return sb.String()
}
