// Package isa implements the instruction set model for the recasm
// assembler.
//
// An instruction set is a table of mnemonics, each with an opcode and the
// set of addressing modes it may be used with. The table is loaded from a
// TOML configuration, validated against a bit-field Layout, and is
// read-only afterwards, so a single Model may be shared by any number of
// concurrent assemblers.
package isa
