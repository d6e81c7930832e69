package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(DefaultLayout.Validate())
	assert.Equal(8, DefaultLayout.Digits())
	assert.Equal("32[6:2:4:4:16]", DefaultLayout.String())

	opcode, mode, reg_z, reg_x, value := DefaultLayout.Shift()
	assert.Equal(uint(26), opcode)
	assert.Equal(uint(24), mode)
	assert.Equal(uint(20), reg_z)
	assert.Equal(uint(16), reg_x)
	assert.Equal(uint(0), value)

	odd := Layout{Word: 18, Opcode: 5, Mode: 2, RegZ: 3, RegX: 3, Value: 5}
	assert.NoError(odd.Validate())
	assert.Equal(5, odd.Digits())

	wide := Layout{Word: 64, Opcode: 8, Mode: 2, RegZ: 5, RegX: 5, Value: 44}
	assert.NoError(wide.Validate())
	assert.Equal(16, wide.Digits())
}

func TestLayoutInvalid(t *testing.T) {
	table := []Layout{
		{Word: 32, Opcode: 6, Mode: 2, RegZ: 4, RegX: 4, Value: 15},
		{Word: 32, Opcode: 7, Mode: 1, RegZ: 4, RegX: 4, Value: 16},
		{Word: 32, Opcode: 0, Mode: 2, RegZ: 4, RegX: 10, Value: 16},
		{Word: 72, Opcode: 8, Mode: 2, RegZ: 5, RegX: 5, Value: 52},
		{},
	}

	for _, layout := range table {
		assert.ErrorIs(t, layout.Validate(), ErrDefinition, layout.String())
	}
}

func TestFitsMask(t *testing.T) {
	assert := assert.New(t)

	assert.True(Fits(0, 1))
	assert.True(Fits(1, 1))
	assert.False(Fits(2, 1))
	assert.True(Fits(0xffff, 16))
	assert.False(Fits(0x10000, 16))
	assert.True(Fits(^uint64(0), 64))

	assert.Equal(uint64(0xf), Mask(4))
	assert.Equal(^uint64(0), Mask(64))
}
