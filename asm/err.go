package asm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/recasm/isa"
	"github.com/ezrec/recasm/translate"
)

var f = translate.From

var (
	// Error kinds
	ErrSyntax         = errors.New(f("syntax error"))
	ErrAddressingMode = errors.New(f("addressing mode error"))
	ErrEncoding       = errors.New(f("encoding error"))

	// Syntax errors
	ErrOperandPrefix      = errors.New(f("operand prefix unknown"))
	ErrOperandDigits      = errors.New(f("operand has no digits"))
	ErrOperandTrailing    = errors.New(f("operand has trailing characters"))
	ErrOperandNumber      = errors.New(f("operand is not a valid number"))
	ErrOperandNegative    = errors.New(f("operand may not be negative"))
	ErrOperandExpression  = errors.New(f("operand expression invalid"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrOperandCount       = errors.New(f("wrong number of operands"))
	ErrOperandDestination = errors.New(f("destination must be a register"))
	ErrParenthesis        = errors.New(f("unbalanced parenthesis"))

	// Disassembly errors
	ErrOpcodeUnknown = errors.New(f("opcode not in instruction set"))
	ErrWordReserved  = errors.New(f("unused fields are not zero"))
)

// ErrToken is a malformed token.
type ErrToken struct {
	Token string
	Err   error
}

func (err *ErrToken) Error() string {
	return f("syntax error: '%v' %v", err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

func (err *ErrToken) Is(target error) bool {
	return target == ErrSyntax
}

// ErrMode is an addressing mode not permitted for a mnemonic.
type ErrMode struct {
	Mnemonic string
	Mode     isa.AddrMode
}

func (err *ErrMode) Error() string {
	return f("addressing mode error: '%v' does not permit %v mode", err.Mnemonic, err.Mode.String())
}

func (err *ErrMode) Is(target error) bool {
	return target == ErrAddressingMode
}

// ErrRange is an operand value that does not fit its field.
type ErrRange struct {
	Field string
	Token string
	Value int64
	Width uint
}

func (err *ErrRange) Error() string {
	return f("encoding error: %v '%v' does not fit in %v bits", err.Field, err.Token, strconv.FormatUint(uint64(err.Width), 10))
}

func (err *ErrRange) Is(target error) bool {
	return target == ErrEncoding
}

// ErrLine locates an error in a source file.
type ErrLine struct {
	File   string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	lineno := strconv.Itoa(err.LineNo)
	line := strings.TrimSpace(err.Line)
	if len(err.File) == 0 {
		return f("line %v '%v' %v", lineno, line, err.Err)
	}
	return f("%v:%v: '%v' %v", err.File, lineno, line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
