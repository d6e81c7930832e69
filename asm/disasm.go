package asm

import (
	"fmt"

	"github.com/ezrec/recasm/isa"
)

// Disassemble returns the canonical source text of a word. Assembling the
// text produces the same word.
func Disassemble(model *isa.Model, word uint64) (text string, err error) {
	layout := model.Layout()
	fields := Decode(layout, word)

	def, ok := model.Opcode(fields.Opcode)
	if !ok {
		err = &ErrToken{Token: fmt.Sprintf("%#x", word), Err: ErrOpcodeUnknown}
		return
	}

	// Any alias of the opcode may be the one permitting the mode.
	if !def.Allows(fields.Mode) {
		found := false
		for alias := range model.Aliases(fields.Opcode) {
			if alias.Allows(fields.Mode) {
				def, found = alias, true
				break
			}
		}
		if !found {
			err = &ErrMode{Mnemonic: def.Mnemonic, Mode: fields.Mode}
			return
		}
	}

	reserved := false
	lone := def.Args == 1

	switch fields.Mode {
	case isa.MODE_INHERENT:
		reserved = fields.RegZ != 0 || fields.RegX != 0 || fields.Value != 0
		text = def.Mnemonic
	case isa.MODE_REGISTER:
		reserved = fields.Value != 0 || (lone && fields.RegZ != 0)
		if lone {
			text = fmt.Sprintf("%v r%d", def.Mnemonic, fields.RegX)
		} else {
			text = fmt.Sprintf("%v r%d r%d", def.Mnemonic, fields.RegZ, fields.RegX)
		}
	case isa.MODE_IMMEDIATE, isa.MODE_DIRECT:
		reserved = fields.RegX != 0 || (lone && fields.RegZ != 0)
		prefix := OPERAND_IMMEDIATE.String()
		if fields.Mode == isa.MODE_DIRECT {
			prefix = OPERAND_DIRECT.String()
		}
		if lone {
			text = fmt.Sprintf("%v %v%d", def.Mnemonic, prefix, fields.Value)
		} else {
			text = fmt.Sprintf("%v r%d %v%d", def.Mnemonic, fields.RegZ, prefix, fields.Value)
		}
	}

	if reserved {
		text = ""
		err = &ErrToken{Token: fmt.Sprintf("%#x", word), Err: ErrWordReserved}
		return
	}

	return
}
