package rom

import (
	"errors"
	"strconv"

	"github.com/ezrec/recasm/translate"
)

var f = translate.From

var (
	// Image errors
	ErrWordSyntax = errors.New(f("not a hex word"))
	ErrWordWidth  = errors.New(f("word too wide"))
)

// ErrWord is a malformed line of an image.
type ErrWord struct {
	LineNo int
	Text   string
	Err    error
}

func (err *ErrWord) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Text, err.Err)
}

func (err *ErrWord) Unwrap() error {
	return err.Err
}
