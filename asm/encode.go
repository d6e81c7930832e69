// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"github.com/ezrec/recasm/isa"
)

// Field names, as reported by ErrRange.
const (
	FIELD_OPCODE = "opcode"
	FIELD_REG_Z  = "rz"
	FIELD_REG_X  = "rx"
	FIELD_VALUE  = "value"
)

// Fields is an unpacked word.
type Fields struct {
	Opcode uint64
	Mode   isa.AddrMode
	RegZ   uint64
	RegX   uint64
	Value  uint64
}

// Pack packs the fields into a word. Fields wider than the layout are
// masked; Encode has already range checked them.
func (fields Fields) Pack(layout isa.Layout) (word uint64) {
	opcode, mode, reg_z, reg_x, value := layout.Shift()

	word |= (fields.Opcode & isa.Mask(layout.Opcode)) << opcode
	word |= (uint64(fields.Mode) & isa.Mask(layout.Mode)) << mode
	word |= (fields.RegZ & isa.Mask(layout.RegZ)) << reg_z
	word |= (fields.RegX & isa.Mask(layout.RegX)) << reg_x
	word |= (fields.Value & isa.Mask(layout.Value)) << value

	return
}

// Signed returns the value field sign extended from its width.
func (fields Fields) Signed(layout isa.Layout) int64 {
	shift := 64 - layout.Value
	return int64(fields.Value<<shift) >> shift
}

// Decode unpacks a word.
func Decode(layout isa.Layout, word uint64) (fields Fields) {
	opcode, mode, reg_z, reg_x, value := layout.Shift()

	fields.Opcode = (word >> opcode) & isa.Mask(layout.Opcode)
	fields.Mode = isa.AddrMode((word >> mode) & isa.Mask(layout.Mode))
	fields.RegZ = (word >> reg_z) & isa.Mask(layout.RegZ)
	fields.RegX = (word >> reg_x) & isa.Mask(layout.RegX)
	fields.Value = (word >> value) & isa.Mask(layout.Value)

	return
}

// fieldOf range checks an operand against an unsigned field.
func fieldOf(name string, op Operand, width uint) (value uint64, err error) {
	if op.Value < 0 || !isa.Fits(uint64(op.Value), width) {
		err = &ErrRange{Field: name, Token: op.Token, Value: op.Value, Width: width}
		return
	}
	value = uint64(op.Value)
	return
}

// immediateOf range checks an immediate. Negative values are stored as
// two's complement of the field width.
func immediateOf(op Operand, width uint) (value uint64, err error) {
	if op.Value >= 0 {
		value, err = fieldOf(FIELD_VALUE, op, width)
		return
	}

	if width < 64 && op.Value < -(int64(1)<<(width-1)) {
		err = &ErrRange{Field: FIELD_VALUE, Token: op.Token, Value: op.Value, Width: width}
		return
	}

	value = uint64(op.Value) & isa.Mask(width)
	return
}

// Encode packs a resolved statement into a word. Operand values that do
// not fit their fields are rejected, never truncated.
//
// An immediate may be any value from -2^(w-1) to 2^w-1 for a value field
// of w bits, and negative values are stored as two's complement. So #-1
// and #65535 encode to the same 16-bit field; the word does not record
// which was written. Decode returns the field unsigned, and
// Fields.Signed returns it sign extended.
func Encode(layout isa.Layout, def isa.Definition, mode isa.AddrMode, stmt *Statement) (word uint64, err error) {
	if !def.Allows(mode) {
		err = &ErrMode{Mnemonic: def.Mnemonic, Mode: mode}
		return
	}

	if !isa.Fits(def.Opcode, layout.Opcode) {
		err = &ErrRange{Field: FIELD_OPCODE, Token: def.Mnemonic, Value: int64(def.Opcode), Width: layout.Opcode}
		return
	}

	fields := Fields{Opcode: def.Opcode, Mode: mode}

	ops := stmt.Operands
	if mode == isa.MODE_INHERENT {
		if len(ops) != 0 {
			err = &ErrToken{Token: ops[0].Token, Err: ErrOperandExtra}
			return
		}
		word = fields.Pack(layout)
		return
	}

	if len(ops) == 0 || len(ops) > 2 {
		err = &ErrToken{Token: stmt.Mnemonic, Err: ErrOperandCount}
		return
	}

	// Destination register
	if len(ops) == 2 {
		fields.RegZ, err = fieldOf(FIELD_REG_Z, ops[0], layout.RegZ)
		if err != nil {
			return
		}
	}

	// Mode bearing operand
	last := ops[len(ops)-1]
	switch mode {
	case isa.MODE_REGISTER:
		fields.RegX, err = fieldOf(FIELD_REG_X, last, layout.RegX)
	case isa.MODE_IMMEDIATE:
		fields.Value, err = immediateOf(last, layout.Value)
	case isa.MODE_DIRECT:
		fields.Value, err = fieldOf(FIELD_VALUE, last, layout.Value)
	}
	if err != nil {
		return
	}

	word = fields.Pack(layout)
	return
}
