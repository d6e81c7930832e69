// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// COMMENT starts a comment in source text, so it may not appear in a mnemonic.
const COMMENT = ';'

// ARGS_ANY marks a definition without a fixed operand count.
const ARGS_ANY = -1

// Entry is the configuration of a single instruction, as found in the
// instruction set file.
type Entry struct {
	Opcode *int64 `toml:"opcode"` // Opcode; required.
	Args   *int   `toml:"args"`   // Operand count; optional.
	Imm    bool   `toml:"imm"`    // Immediate mode permitted.
	Reg    bool   `toml:"reg"`    // Register mode permitted.
	Dir    bool   `toml:"dir"`    // Direct mode permitted.
	Inh    bool   `toml:"inh"`    // Inherent mode permitted.
}

// Modes returns the set of permitted addressing modes.
func (entry *Entry) Modes() (set ModeSet) {
	if entry.Inh {
		set |= MakeModeSet(MODE_INHERENT)
	}
	if entry.Imm {
		set |= MakeModeSet(MODE_IMMEDIATE)
	}
	if entry.Reg {
		set |= MakeModeSet(MODE_REGISTER)
	}
	if entry.Dir {
		set |= MakeModeSet(MODE_DIRECT)
	}
	return
}

// Config is an instruction set configuration, keyed by mnemonic.
type Config map[string]Entry

// Definition is a validated instruction.
type Definition struct {
	Mnemonic string  // Lower case mnemonic.
	Opcode   uint64  // Opcode, within the layout's opcode width.
	Modes    ModeSet // Permitted addressing modes; never empty.
	Args     int     // Required operand count, or ARGS_ANY.
}

// Allows returns true if the definition permits mode.
func (def Definition) Allows(mode AddrMode) bool {
	return def.Modes.Has(mode)
}

// Model is an immutable instruction set.
type Model struct {
	layout     Layout
	definition map[string]Definition
	opcode     map[uint64][]string
}

// Build validates config against layout and returns the instruction set.
// All entries are checked; if any fail, the errors are joined in mnemonic
// order and no model is returned.
func Build(layout Layout, config Config) (model *Model, err error) {
	err = layout.Validate()
	if err != nil {
		return
	}

	building := &Model{
		layout:     layout,
		definition: make(map[string]Definition, len(config)),
		opcode:     make(map[uint64][]string, len(config)),
	}

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(config)) {
		entry := config[name]
		def, _err := makeDefinition(layout, name, &entry)
		if _err == nil {
			if _, ok := building.definition[def.Mnemonic]; ok {
				_err = ErrMnemonicDuplicate
			}
		}
		if _err != nil {
			errs = append(errs, &ErrEntry{Mnemonic: name, Err: _err})
			continue
		}

		building.definition[def.Mnemonic] = def
		building.opcode[def.Opcode] = append(building.opcode[def.Opcode], def.Mnemonic)
	}

	err = errors.Join(errs...)
	if err != nil {
		return
	}

	for _, aliases := range building.opcode {
		slices.Sort(aliases)
	}

	model = building
	return
}

// makeDefinition validates a single entry.
func makeDefinition(layout Layout, name string, entry *Entry) (def Definition, err error) {
	if len(name) == 0 || strings.ContainsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == COMMENT || r == '(' || r == ')'
	}) {
		err = ErrMnemonicInvalid
		return
	}

	if entry.Opcode == nil {
		err = ErrOpcodeMissing
		return
	}

	opcode := *entry.Opcode
	if opcode < 0 || !Fits(uint64(opcode), layout.Opcode) {
		err = ErrOpcodeRange
		return
	}

	modes := entry.Modes()
	if modes.Empty() {
		err = ErrModeNone
		return
	}

	args := ARGS_ANY
	if entry.Args != nil {
		args = *entry.Args
		if args < 0 || args > 2 {
			err = ErrArgsRange
			return
		}
	}

	def = Definition{
		Mnemonic: strings.ToLower(name),
		Opcode:   uint64(opcode),
		Modes:    modes,
		Args:     args,
	}

	return
}

// Layout returns the layout the model was validated against.
func (model *Model) Layout() Layout {
	return model.layout
}

// Len returns the number of defined instructions.
func (model *Model) Len() int {
	return len(model.definition)
}

// Lookup finds the definition of a mnemonic, ignoring case.
func (model *Model) Lookup(mnemonic string) (def Definition, err error) {
	def, ok := model.definition[strings.ToLower(mnemonic)]
	if !ok {
		err = ErrUnknownMnemonic(mnemonic)
	}
	return
}

// Opcode finds the definition for an opcode. If several mnemonics share
// the opcode, the first in sorted order is returned.
func (model *Model) Opcode(opcode uint64) (def Definition, ok bool) {
	aliases := model.opcode[opcode]
	if len(aliases) == 0 {
		return
	}
	def, ok = model.definition[aliases[0]], true
	return
}

// Aliases returns an iterator over all definitions sharing an opcode, in
// mnemonic order.
func (model *Model) Aliases(opcode uint64) iter.Seq[Definition] {
	return func(yield func(def Definition) bool) {
		for _, mnemonic := range model.opcode[opcode] {
			if !yield(model.definition[mnemonic]) {
				return
			}
		}
	}
}

// Definitions returns an iterator over all definitions, in mnemonic order.
func (model *Model) Definitions() iter.Seq[Definition] {
	return func(yield func(def Definition) bool) {
		for _, mnemonic := range slices.Sorted(maps.Keys(model.definition)) {
			if !yield(model.definition[mnemonic]) {
				return
			}
		}
	}
}
