// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"log"
)

// slot is the position of a lone register in its operand word.
type slot int

const (
	SLOT_LEFT  = slot(0) // Source register, at bit 8.
	SLOT_RIGHT = slot(1) // Destination register, at bit 2.
)

// encodeOperand emits the word of a single operand.
func (asm *Assembler) encodeOperand(tu *TranslationUnit, op Operand, at slot) (err error) {
	var word Word

	switch op.Mode {
	case MODE_REGISTER:
		if at == SLOT_LEFT {
			word = MakeWordRegisters(op.Value, 0)
		} else {
			word = MakeWordRegisters(0, op.Value)
		}
	case MODE_CONSTANT:
		word = MakeWordConstant(op.Value)
	case MODE_SYMBOL:
		// Undefined symbols still take their word, to keep the layout.
		word, err = tu.reference(op.Symbol)
	}

	tu.Code = append(tu.Code, word)
	return
}

// encodePair emits the words of two operands. Two registers share a word.
func (asm *Assembler) encodePair(tu *TranslationUnit, ops []Operand) (err error) {
	if operandWords(ops) == 1 {
		tu.Code = append(tu.Code, MakeWordRegisters(ops[0].Value, ops[1].Value))
		return
	}

	var errs []error
	for n, op := range ops {
		errs = append(errs, asm.encodeOperand(tu, op, slot(n)))
	}

	err = errors.Join(errs...)
	return
}

// encodeInstruction emits the words of an instruction line.
func (asm *Assembler) encodeInstruction(tu *TranslationUnit, line *Line) (err error) {
	op := line.Opcode
	ops := line.Operands

	switch op.Group() {
	case GROUP_A:
		tu.Code = append(tu.Code, MakeWordOpcode(op, ops[0].Mode, ops[1].Mode))
		err = asm.encodePair(tu, ops)
	case GROUP_B:
		if !line.Indexed {
			tu.Code = append(tu.Code, MakeWordOpcode(op, MODE_CONSTANT, ops[0].Mode))
			err = asm.encodeOperand(tu, ops[0], SLOT_RIGHT)
			break
		}
		tu.Code = append(tu.Code, MakeWordIndexed(op, ops[0].Mode, ops[1].Mode))
		err = asm.encodeOperand(tu, Operand{Mode: MODE_SYMBOL, Symbol: line.Symbol}, SLOT_RIGHT)
		err = errors.Join(err, asm.encodePair(tu, ops))
	case GROUP_C:
		tu.Code = append(tu.Code, MakeWordOpcode(op, MODE_CONSTANT, MODE_CONSTANT))
	}

	return
}

// encodeData emits the words of a .data or .string line.
func (asm *Assembler) encodeData(tu *TranslationUnit, line *Line) {
	switch line.Directive {
	case DIR_DATA:
		for _, value := range line.Data {
			tu.Data = append(tu.Data, MakeWordData(value))
		}
	case DIR_STRING:
		for n := range len(line.Text) {
			tu.Data = append(tu.Data, MakeWordData(int(line.Text[n])))
		}
		tu.Data = append(tu.Data, MakeWordData(0))
	}
}

// SecondPass encodes a source into the code and data words of a
// translation unit, whose symbol table was built by FirstPass.
func (asm *Assembler) SecondPass(lines []string, tu *TranslationUnit) (err error) {
	var errs []error

	for n, text := range lines {
		lineno := n + 1
		line := ParseLine(text)

		switch line.Kind {
		case LINE_INSTRUCTION:
			ip := tu.NextAddress()
			err = asm.encodeInstruction(tu, &line)
			for _, e := range unjoin(err) {
				errs = append(errs, asm.fail(lineno, e))
			}
			if asm.Verbose {
				log.Printf("%v:%v: %v %v", asm.File, lineno, ip, tu.Code[ip-BASE_ADDRESS:])
			}
		case LINE_DIRECTIVE:
			asm.encodeData(tu, &line)
		}
	}

	err = errors.Join(errs...)
	return
}

// unjoin splits an error created by errors.Join.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
