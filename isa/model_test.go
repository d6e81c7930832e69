package isa

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func opcode(v int64) *int64 {
	return &v
}

func args(v int) *int {
	return &v
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	config := Config{
		"nop": {Opcode: opcode(0), Inh: true},
		"add": {Opcode: opcode(3), Reg: true, Imm: true},
		"or":  {Opcode: opcode(2), Reg: true},
		"and": {Opcode: opcode(1), Imm: true, Reg: true},
		"LDR": {Opcode: opcode(0x3f), Imm: true, Reg: true, Dir: true, Args: args(2)},
	}

	model, err := Build(DefaultLayout, config)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(5, model.Len())
	assert.Equal(DefaultLayout, model.Layout())

	def, err := model.Lookup("ADD")
	assert.NoError(err)
	assert.Equal(Definition{Mnemonic: "add", Opcode: 3, Modes: MakeModeSet(MODE_REGISTER, MODE_IMMEDIATE), Args: ARGS_ANY}, def)
	assert.True(def.Allows(MODE_IMMEDIATE))
	assert.True(def.Allows(MODE_REGISTER))
	assert.False(def.Allows(MODE_DIRECT))
	assert.False(def.Allows(MODE_INHERENT))

	def, err = model.Lookup("ldr")
	assert.NoError(err)
	assert.Equal("ldr", def.Mnemonic)
	assert.Equal(uint64(0x3f), def.Opcode)
	assert.Equal(2, def.Args)
	assert.Equal("imm|reg|dir", def.Modes.String())

	_, err = model.Lookup("xor")
	assert.True(errors.Is(err, ErrUnknownMnemonic("")))
	assert.Equal("unknown mnemonic 'xor'", err.Error())

	def, ok := model.Opcode(2)
	assert.True(ok)
	assert.Equal("or", def.Mnemonic)

	_, ok = model.Opcode(9)
	assert.False(ok)

	var names []string
	for def := range model.Definitions() {
		names = append(names, def.Mnemonic)
	}
	assert.Equal([]string{"add", "and", "ldr", "nop", "or"}, names)
}

func TestBuildOpcodeAlias(t *testing.T) {
	assert := assert.New(t)

	model, err := Build(DefaultLayout, Config{
		"sz":  {Opcode: opcode(20), Imm: true},
		"jz":  {Opcode: opcode(20), Imm: true},
		"jmp": {Opcode: opcode(24), Imm: true, Reg: true},
	})
	assert.NoError(err)

	def, ok := model.Opcode(20)
	assert.True(ok)
	assert.Equal("jz", def.Mnemonic)

	var names []string
	for def := range model.Aliases(20) {
		names = append(names, def.Mnemonic)
	}
	assert.Equal([]string{"jz", "sz"}, names)

	names = nil
	for def := range model.Aliases(21) {
		names = append(names, def.Mnemonic)
	}
	assert.Empty(names)

	// Aliases are ordered by lower case mnemonic.
	model, err = Build(DefaultLayout, Config{
		"b": {Opcode: opcode(7), Imm: true},
		"A": {Opcode: opcode(7), Reg: true},
	})
	assert.NoError(err)
	def, ok = model.Opcode(7)
	assert.True(ok)
	assert.Equal("a", def.Mnemonic)
}

func TestBuildErrors(t *testing.T) {
	table := [](struct {
		Name   string
		Config Config
		Err    error
	}){
		{"duplicate", Config{
			"add": {Opcode: opcode(3), Reg: true},
			"ADD": {Opcode: opcode(4), Reg: true},
		}, ErrMnemonicDuplicate},
		{"opcode-range", Config{
			"add": {Opcode: opcode(64), Reg: true},
		}, ErrOpcodeRange},
		{"opcode-negative", Config{
			"add": {Opcode: opcode(-1), Reg: true},
		}, ErrOpcodeRange},
		{"opcode-missing", Config{
			"add": {Reg: true},
		}, ErrOpcodeMissing},
		{"no-mode", Config{
			"add": {Opcode: opcode(3)},
		}, ErrModeNone},
		{"empty-mnemonic", Config{
			"": {Opcode: opcode(3), Inh: true},
		}, ErrMnemonicInvalid},
		{"space-mnemonic", Config{
			"a b": {Opcode: opcode(3), Inh: true},
		}, ErrMnemonicInvalid},
		{"comment-mnemonic", Config{
			"a;b": {Opcode: opcode(3), Inh: true},
		}, ErrMnemonicInvalid},
		{"args", Config{
			"add": {Opcode: opcode(3), Reg: true, Args: args(3)},
		}, ErrArgsRange},
	}

	for _, testcase := range table {
		t.Run(testcase.Name, func(t *testing.T) {
			assert := assert.New(t)

			model, err := Build(DefaultLayout, testcase.Config)
			assert.Nil(model)
			assert.ErrorIs(err, testcase.Err)
			assert.ErrorIs(err, ErrDefinition)
		})
	}
}

func TestBuildAllEntriesChecked(t *testing.T) {
	assert := assert.New(t)

	model, err := Build(DefaultLayout, Config{
		"good": {Opcode: opcode(1), Inh: true},
		"zap":  {Opcode: opcode(99), Inh: true},
		"bad":  {Opcode: opcode(2)},
	})
	assert.Nil(model)
	assert.ErrorIs(err, ErrOpcodeRange)
	assert.ErrorIs(err, ErrModeNone)

	var entry *ErrEntry
	assert.True(errors.As(err, &entry))
	assert.Equal("bad", entry.Mnemonic)

	// Errors are reported in mnemonic order, every time.
	_, again := Build(DefaultLayout, Config{
		"zap":  {Opcode: opcode(99), Inh: true},
		"bad":  {Opcode: opcode(2)},
		"good": {Opcode: opcode(1), Inh: true},
	})
	assert.Equal(err.Error(), again.Error())
}

func TestBuildLayout(t *testing.T) {
	assert := assert.New(t)

	layout := Layout{Word: 16, Opcode: 4, Mode: 2, RegZ: 2, RegX: 2, Value: 6}
	config := Config{"add": {Opcode: opcode(15), Reg: true}}

	model, err := Build(layout, config)
	assert.NoError(err)
	assert.Equal(1, model.Len())

	config["sub"] = Entry{Opcode: opcode(16), Reg: true}
	_, err = Build(layout, config)
	assert.ErrorIs(err, ErrOpcodeRange)

	layout.Value = 7
	_, err = Build(layout, config)
	assert.ErrorIs(err, ErrLayoutWidth)
	assert.ErrorIs(err, ErrDefinition)
}

func TestModeSet(t *testing.T) {
	assert := assert.New(t)

	set := MakeModeSet(MODE_DIRECT, MODE_INHERENT)
	assert.True(set.Has(MODE_DIRECT))
	assert.True(set.Has(MODE_INHERENT))
	assert.False(set.Has(MODE_REGISTER))
	assert.False(set.Has(AddrMode(-1)))
	assert.False(set.Empty())
	assert.True(ModeSet(0).Empty())
	assert.Equal("inh|dir", set.String())

	entry := Entry{Imm: true, Dir: true}
	assert.Equal(MakeModeSet(MODE_IMMEDIATE, MODE_DIRECT), entry.Modes())

	entry = Entry{Inh: true, Imm: true, Reg: true, Dir: true}
	assert.Equal(MakeModeSet(Modes...), entry.Modes())
	assert.Equal("inh|imm|reg|dir", entry.Modes().String())

	entry = Entry{Reg: true}
	assert.Equal(MakeModeSet(MODE_REGISTER), entry.Modes())
	assert.True((&Entry{}).Modes().Empty())

	assert.True(slices.Equal(Modes, []AddrMode{0, 1, 2, 3}))
	assert.Equal("imm", MODE_IMMEDIATE.String())
	assert.Equal("AddrMode(7)", AddrMode(7).String())
}
