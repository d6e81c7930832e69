package isa

import (
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrConfigKeys = errors.New(f("unknown keys"))

// Load decodes a TOML instruction set from input, and builds a model.
// Keys other than those of Entry are rejected.
func Load(input io.Reader, layout Layout) (model *Model, err error) {
	var config Config

	meta, err := toml.NewDecoder(input).Decode(&config)
	if err != nil {
		err = &ErrConfig{Err: err}
		return
	}

	undecoded := meta.Undecoded()
	if len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		slices.Sort(keys)
		err = &ErrEntry{Mnemonic: strings.Join(keys, ","), Err: ErrConfigKeys}
		return
	}

	model, err = Build(layout, config)
	return
}

// LoadFile loads an instruction set from a TOML file.
func LoadFile(path string, layout Layout) (model *Model, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrConfig{File: path, Err: err}
		return
	}
	defer inf.Close()

	model, err = Load(inf, layout)

	var config_err *ErrConfig
	switch {
	case err == nil:
	case errors.As(err, &config_err) && len(config_err.File) == 0:
		config_err.File = path
	default:
		err = &ErrConfig{File: path, Err: err}
	}

	return
}
