package isa

import (
	"fmt"
)

// Layout is the bit-field layout of an encoded word. Fields are packed
// from the most significant bit down in the order Opcode, Mode, RegZ,
// RegX, Value.
type Layout struct {
	Word   uint // Total word width.
	Opcode uint // Opcode field width.
	Mode   uint // Addressing mode selector width.
	RegZ   uint // Destination register index width.
	RegX   uint // Source register index width.
	Value  uint // Immediate or direct value width.
}

// DefaultLayout is the ReCOP word layout.
var DefaultLayout = Layout{
	Word:   32,
	Opcode: 6,
	Mode:   2,
	RegZ:   4,
	RegX:   4,
	Value:  16,
}

// Validate checks that the fields fill the word exactly.
func (layout Layout) Validate() (err error) {
	for _, width := range []uint{layout.Opcode, layout.Mode, layout.RegZ, layout.RegX, layout.Value} {
		if width == 0 || width > 64 {
			err = &ErrLayout{Layout: layout, Err: ErrLayoutField}
			return
		}
	}

	// Four addressing modes need a two bit selector.
	if layout.Mode < 2 {
		err = &ErrLayout{Layout: layout, Err: ErrLayoutField}
		return
	}

	if layout.Word > 64 || layout.Opcode+layout.Mode+layout.RegZ+layout.RegX+layout.Value != layout.Word {
		err = &ErrLayout{Layout: layout, Err: ErrLayoutWidth}
		return
	}

	return
}

// Digits returns the number of hex digits needed for a word.
func (layout Layout) Digits() int {
	return int((layout.Word + 3) / 4)
}

// Shift returns the bit offsets of each field.
func (layout Layout) Shift() (opcode, mode, reg_z, reg_x, value uint) {
	value = 0
	reg_x = value + layout.Value
	reg_z = reg_x + layout.RegX
	mode = reg_z + layout.RegZ
	opcode = mode + layout.Mode
	return
}

// Fits returns true if value can be held in a field of width bits.
func Fits(value uint64, width uint) bool {
	if width >= 64 {
		return true
	}
	return value < (uint64(1) << width)
}

// Mask returns a mask of the low width bits.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// String returns the field widths, most significant first.
func (layout Layout) String() string {
	return fmt.Sprintf("%d[%d:%d:%d:%d:%d]", layout.Word, layout.Opcode, layout.Mode, layout.RegZ, layout.RegX, layout.Value)
}
