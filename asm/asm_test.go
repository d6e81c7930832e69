package asm

import (
	"testing"

	"github.com/ezrec/recasm/isa"
)

func opcode(v int64) *int64 {
	return &v
}

func args(v int) *int {
	return &v
}

// scenarioConfig is a small ReCOP-like instruction set.
var scenarioConfig = isa.Config{
	"nop": {Opcode: opcode(0), Inh: true},
	"add": {Opcode: opcode(3), Reg: true, Imm: true},
	"or":  {Opcode: opcode(2), Reg: true},
	"and": {Opcode: opcode(1), Imm: true, Reg: true},
	"ldr": {Opcode: opcode(0x20), Imm: true, Reg: true, Dir: true},
	"jmp": {Opcode: opcode(0x18), Imm: true, Reg: true, Args: args(1)},
	"str": {Opcode: opcode(0x22), Dir: true, Imm: true},
}

func scenarioModel(t *testing.T) *isa.Model {
	model, err := isa.Build(isa.DefaultLayout, scenarioConfig)
	if err != nil {
		t.Fatal(err)
	}
	return model
}
