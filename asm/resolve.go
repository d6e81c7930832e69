package asm

import (
	"github.com/ezrec/recasm/isa"
)

// modeOf maps an operand kind to the addressing mode it selects.
var modeOf = map[OperandKind]isa.AddrMode{
	OPERAND_REGISTER:  isa.MODE_REGISTER,
	OPERAND_IMMEDIATE: isa.MODE_IMMEDIATE,
	OPERAND_DIRECT:    isa.MODE_DIRECT,
}

// Shape derives the addressing mode implied by the operands of a
// statement, without reference to any instruction set.
//
// No operands is inherent. A single operand selects the mode by its kind.
// With two operands the first is a destination register and the second
// selects the mode.
func Shape(stmt *Statement) (mode isa.AddrMode, err error) {
	ops := stmt.Operands

	switch len(ops) {
	case 0:
		mode = isa.MODE_INHERENT
	case 1:
		mode = modeOf[ops[0].Kind]
	case 2:
		if ops[0].Kind != OPERAND_REGISTER {
			err = &ErrToken{Token: ops[0].Token, Err: ErrOperandDestination}
			return
		}
		mode = modeOf[ops[1].Kind]
	default:
		err = &ErrToken{Token: ops[2].Token, Err: ErrOperandExtra}
	}

	return
}

// Resolve finds the definition of the statement's mnemonic and the
// addressing mode of its operands, and checks that the mode is permitted.
func Resolve(model *isa.Model, stmt *Statement) (def isa.Definition, mode isa.AddrMode, err error) {
	def, err = model.Lookup(stmt.Mnemonic)
	if err != nil {
		return
	}

	mode, err = Shape(stmt)
	if err != nil {
		return
	}

	if def.Args != isa.ARGS_ANY && def.Args != len(stmt.Operands) {
		err = &ErrToken{Token: stmt.Mnemonic, Err: ErrOperandCount}
		return
	}

	if !def.Allows(mode) {
		err = &ErrMode{Mnemonic: def.Mnemonic, Mode: mode}
		return
	}

	return
}
