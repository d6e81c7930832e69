// Package rom reads and writes hexadecimal memory images, one word per
// line, as consumed by HDL memory initialisation ($readmemh and similar).
package rom

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ezrec/recasm/isa"
)

// Image is an ordered list of words of a fixed bit width.
type Image struct {
	Width uint     // Word width in bits.
	Words []uint64 // Words, in address order.
}

var _ io.WriterTo = (*Image)(nil)
var _ io.ReaderFrom = (*Image)(nil)

// Digits returns the number of hex digits per word.
func (image *Image) Digits() int {
	return int((image.Width + 3) / 4)
}

// All returns an iterator over the words and their addresses.
func (image *Image) All() iter.Seq2[int, uint64] {
	return func(yield func(addr int, word uint64) bool) {
		for addr, word := range image.Words {
			if !yield(addr, word) {
				return
			}
		}
	}
}

// WriteTo writes the image as lower case, zero padded hex words.
func (image *Image) WriteTo(w io.Writer) (n int64, err error) {
	digits := image.Digits()
	bw := bufio.NewWriter(w)

	line := make([]byte, 0, digits+1)
	for _, word := range image.Words {
		line = line[:0]
		hex := strconv.FormatUint(word, 16)
		for range digits - len(hex) {
			line = append(line, '0')
		}
		line = append(line, hex...)
		line = append(line, '\n')

		var written int
		written, err = bw.Write(line)
		n += int64(written)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

// ReadFrom replaces the words of the image with those read from r.
// Blank lines are ignored. Width must already be set.
func (image *Image) ReadFrom(r io.Reader) (n int64, err error) {
	data, err := io.ReadAll(r)
	n = int64(len(data))
	if err != nil {
		return
	}

	digits := image.Digits()

	var words []uint64
	for lineno, line := range bytes.Split(data, []byte("\n")) {
		text := strings.TrimSpace(string(line))
		if len(text) == 0 {
			continue
		}

		if len(text) > digits {
			err = &ErrWord{LineNo: lineno + 1, Text: text, Err: ErrWordWidth}
			return
		}

		var word uint64
		word, err = strconv.ParseUint(text, 16, 64)
		if err != nil {
			err = &ErrWord{LineNo: lineno + 1, Text: text, Err: ErrWordSyntax}
			return
		}

		if !isa.Fits(word, image.Width) {
			err = &ErrWord{LineNo: lineno + 1, Text: text, Err: ErrWordWidth}
			return
		}

		words = append(words, word)
	}

	image.Words = words
	return
}

// WriteFile writes the image to path. The image is written to a temporary
// file which is renamed over path only once complete.
func WriteFile(path string, image *Image) (err error) {
	ouf, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			ouf.Close()
			os.Remove(ouf.Name())
		}
	}()

	_, err = image.WriteTo(ouf)
	if err != nil {
		return
	}

	err = ouf.Chmod(0o644)
	if err != nil {
		return
	}

	err = ouf.Close()
	if err != nil {
		return
	}

	err = os.Rename(ouf.Name(), path)
	return
}

// ReadFile reads an image of width bits from path.
func ReadFile(path string, width uint) (image *Image, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	image = &Image{Width: width}
	_, err = image.ReadFrom(inf)
	if err != nil {
		image = nil
	}

	return
}
