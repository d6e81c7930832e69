package isa

import (
	"errors"

	"github.com/ezrec/recasm/translate"
)

var f = translate.From

var (
	// Error kinds
	ErrDefinition = errors.New(f("config error"))

	// Definition errors
	ErrMnemonicDuplicate = errors.New(f("mnemonic duplicated"))
	ErrMnemonicInvalid   = errors.New(f("mnemonic invalid"))
	ErrOpcodeMissing     = errors.New(f("opcode missing"))
	ErrOpcodeRange       = errors.New(f("opcode out of range"))
	ErrModeNone          = errors.New(f("no addressing mode permitted"))
	ErrArgsRange         = errors.New(f("args out of range"))

	// Layout errors
	ErrLayoutWidth = errors.New(f("layout fields do not fill the word"))
	ErrLayoutField = errors.New(f("layout field width invalid"))
)

// ErrEntry is a malformed instruction definition.
type ErrEntry struct {
	Mnemonic string
	Err      error
}

func (err *ErrEntry) Error() string {
	return f("config error: '%v' %v", err.Mnemonic, err.Err)
}

func (err *ErrEntry) Unwrap() error {
	return err.Err
}

func (err *ErrEntry) Is(target error) bool {
	return target == ErrDefinition
}

// ErrConfig is a configuration that could not be read or decoded.
type ErrConfig struct {
	File string
	Err  error
}

func (err *ErrConfig) Error() (msg string) {
	if errors.Is(err.Err, ErrDefinition) {
		msg = err.Err.Error()
	} else {
		msg = f("config error: %v", err.Err)
	}
	if len(err.File) != 0 {
		msg = f("%v: %v", err.File, msg)
	}
	return
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

func (err *ErrConfig) Is(target error) bool {
	return target == ErrDefinition
}

// ErrLayout is an invalid bit-field layout.
type ErrLayout struct {
	Layout Layout
	Err    error
}

func (err *ErrLayout) Error() string {
	return f("config error: layout %v %v", err.Layout.String(), err.Err)
}

func (err *ErrLayout) Unwrap() error {
	return err.Err
}

func (err *ErrLayout) Is(target error) bool {
	return target == ErrDefinition
}

// ErrUnknownMnemonic is a mnemonic with no definition.
type ErrUnknownMnemonic string

func (eu ErrUnknownMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(eu))
}

func (eu ErrUnknownMnemonic) Is(err error) (ok bool) {
	_, ok = err.(ErrUnknownMnemonic)
	return
}
