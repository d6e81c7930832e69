// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/recasm/asm"
	"github.com/ezrec/recasm/isa"
	"github.com/ezrec/recasm/rom"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}
}

// run assembles (or disassembles) as directed by args. Nothing is written
// to the output file unless every line assembles.
func run(args []string, stdout, stderr io.Writer) (err error) {
	var instructions string
	var output string
	var workers int
	var disassemble bool
	var verbose bool

	flags := flag.NewFlagSet("recasm", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&instructions, "i", "", ".toml instruction set file")
	flags.StringVar(&output, "o", "out.txt", "Hex image output (- for stdout)")
	flags.IntVar(&workers, "j", 0, "Concurrent line workers (0 for one per CPU)")
	flags.BoolVar(&disassemble, "d", false, "Disassemble a hex image, do not assemble")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %v -i instructions.toml [options] source\n", flags.Name())
		flags.PrintDefaults()
	}

	err = flags.Parse(args)
	if err != nil {
		err = errUsage
		return
	}

	if flags.NArg() != 1 {
		flags.Usage()
		err = errUsage
		return
	}
	input := flags.Arg(0)

	if len(instructions) == 0 {
		err = fmt.Errorf("%v: no instruction set (-i)", flags.Name())
		return
	}

	// The instruction set is complete before any source is read.
	model, err := isa.LoadFile(instructions, isa.DefaultLayout)
	if err != nil {
		return
	}

	if disassemble {
		var image *rom.Image
		image, err = rom.ReadFile(input, model.Layout().Word)
		if err != nil {
			err = fmt.Errorf("%v: %w", input, err)
			return
		}
		for addr, word := range image.All() {
			var text string
			text, err = asm.Disassemble(model, word)
			if err != nil {
				err = fmt.Errorf("%v: word %v: %w", input, addr, err)
				return
			}
			fmt.Fprintln(stdout, text)
		}
		return
	}

	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Model:   model,
		File:    input,
		Workers: workers,
		Verbose: verbose,
	}

	image, err := assembler.Assemble(inf)
	if err != nil {
		return
	}

	if output == "-" {
		_, err = image.WriteTo(stdout)
	} else {
		err = rom.WriteFile(output, image)
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", output, err)
	}

	return
}
