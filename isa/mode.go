package isa

import (
	"strings"
)

// AddrMode is an addressing mode. The value is also the encoded
// addressing-mode selector.
type AddrMode int

//go:generate go tool stringer -linecomment -type=AddrMode
const (
	MODE_INHERENT  = AddrMode(0) // inh
	MODE_IMMEDIATE = AddrMode(1) // imm
	MODE_REGISTER  = AddrMode(2) // reg
	MODE_DIRECT    = AddrMode(3) // dir
)

// Modes lists all addressing modes in selector order.
var Modes = []AddrMode{MODE_INHERENT, MODE_IMMEDIATE, MODE_REGISTER, MODE_DIRECT}

// ModeSet is a set of addressing modes.
type ModeSet uint8

// MakeModeSet returns the set of the listed modes.
func MakeModeSet(modes ...AddrMode) (set ModeSet) {
	for _, mode := range modes {
		set |= 1 << mode
	}
	return
}

// Has returns true if mode is in the set.
func (set ModeSet) Has(mode AddrMode) bool {
	return mode >= 0 && mode < 8 && (set&(1<<mode)) != 0
}

// Empty returns true if no mode is in the set.
func (set ModeSet) Empty() bool {
	return set == 0
}

// String returns the mode names joined with '|', in selector order.
func (set ModeSet) String() string {
	var names []string
	for _, mode := range Modes {
		if set.Has(mode) {
			names = append(names, mode.String())
		}
	}
	return strings.Join(names, "|")
}
