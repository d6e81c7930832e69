package internal

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// maxLineSize bounds a single source line.
const maxLineSize = 1 << 20

// Lines reads all of the lines of input, with any trailing CR removed.
func Lines(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	err = scanner.Err()
	return
}

// Numbered yields each line with its 1-based line number.
func Numbered(lines []string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n, line := range lines {
			if !yield(n+1, line) {
				return // Stop if the consumer stops
			}
		}
	}
}
