// Package asm implements the two pass assembler for the 14-bit teaching
// machine.
//
// The machine has 16 instructions, 8 registers (r0-r7), and 14-bit words.
// Code is loaded at address 100, and data follows directly after the code.
//
// Pass 1 (FirstPass) classifies every line, builds the symbol table, and
// counts code and data words. Pass 2 (SecondPass) re-parses the same lines
// and emits the code and data words, resolving symbols and recording every
// use of an external symbol. Each pass reports all the diagnostics it finds
// rather than stopping at the first one.
package asm
