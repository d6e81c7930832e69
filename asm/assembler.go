// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/recasm/internal"
	"github.com/ezrec/recasm/isa"
	"github.com/ezrec/recasm/rom"
)

// Assembler is a single pass, line oriented assembler for an instruction
// set model.
type Assembler struct {
	Model   *isa.Model // Instruction set. Read only.
	File    string     // Source file name, for error messages.
	Workers int        // Number of concurrent line workers; 0 for GOMAXPROCS.
	Verbose bool       // If set, verbosely logs the assembler actions.
}

// assembled is the outcome of a single line.
type assembled struct {
	word uint64
	ok   bool
	err  error
}

// AssembleLine assembles a single line. ok is false for blank and
// comment lines.
func (asm *Assembler) AssembleLine(line string, lineno int) (word uint64, ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrLine{File: asm.File, LineNo: lineno, Line: line, Err: err}
		}
	}()

	stmt, err := ParseLine(line, lineno)
	if err != nil || stmt == nil {
		return
	}

	def, mode, err := Resolve(asm.Model, stmt)
	if err != nil {
		return
	}

	word, err = Encode(asm.Model.Layout(), def, mode, stmt)
	if err != nil {
		return
	}

	ok = true
	return
}

// Assemble assembles all of input into an image. Every line is assembled;
// if any fail, all of the line errors are returned in line order and no
// image is produced.
func (asm *Assembler) Assemble(input io.Reader) (image *rom.Image, err error) {
	lines, err := internal.Lines(input)
	if err != nil {
		return
	}

	workers := asm.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]assembled, len(lines))

	var group errgroup.Group
	group.SetLimit(workers)
	for lineno, line := range internal.Numbered(lines) {
		group.Go(func() error {
			result := &results[lineno-1]
			result.word, result.ok, result.err = asm.AssembleLine(line, lineno)
			return nil
		})
	}
	_ = group.Wait()

	layout := asm.Model.Layout()
	words := make([]uint64, 0, len(lines))

	var errs []error
	for lineno, line := range internal.Numbered(lines) {
		res := results[lineno-1]
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		if !res.ok {
			continue
		}
		if asm.Verbose {
			log.Printf("%v: %v => %0*x\n", lineno, line, layout.Digits(), res.word)
		}
		words = append(words, res.word)
	}

	err = errors.Join(errs...)
	if err != nil {
		return
	}

	image = &rom.Image{
		Width: layout.Word,
		Words: words,
	}

	return
}
