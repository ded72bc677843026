// Package lstvec pulls the instruction words out of an assembler listing
// file so they can be pasted into a VHDL program memory initializer.
//
// Code lines in a listing start with a zero padded address in column 0
// followed by one or two 4 digit instruction words in fixed columns:
//
//	000100  1234 5678   foo bar
//	000104  abcd        nop
//
// Everything else in the listing is ignored.
package lstvec

import (
	"bufio"
	"bytes"
	"io"

	"github.com/jmchacon/cpuvec/lineio"
	"github.com/jmchacon/cpuvec/vector"
	"github.com/jmchacon/cpuvec/vhdl"
	"github.com/pkg/errors"
)

const (
	wordLen = 4
	// secondCol is how far the second word starts past the first.
	secondCol = wordLen + 1
)

var blankWord = []byte("    ")

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsCode returns true if line is an instruction line.
func IsCode(line []byte) bool {
	return len(line) > 0 && line[0] == '0'
}

// ParseLine returns the instruction words on line (upper cased). Lines that
// aren't code lines return nil. Words are copied verbatim otherwise and may be
// short if the line ends early.
func ParseLine(line []byte) []string {
	if !IsCode(line) {
		return nil
	}
	line = lineio.Text(line)

	// Skip the address and the gap after it.
	i := 0
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	words := []string{word(line, i)}

	// A second word is there unless its column is blank.
	if w := window(line, i+secondCol); len(w) > 0 && !bytes.Equal(w, blankWord) {
		words = append(words, upper(w))
	}
	return words
}

func window(line []byte, i int) []byte {
	if i >= len(line) {
		return nil
	}
	end := i + wordLen
	if end > len(line) {
		end = len(line)
	}
	return line[i:end]
}

func word(line []byte, i int) string {
	return upper(window(line, i))
}

// upper only touches ASCII a-z, anything else passes through.
func upper(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// Emit writes words as hex literal tokens, 5 to a line.
func Emit(w io.Writer, words []string) error {
	return vhdl.Tokens(w, words)
}

// Options control a conversion pass.
type Options struct {
	// Limit is the most words the pass can store before it runs out
	// of memory. Zero means no limit.
	Limit int
}

// Parse reads every line from r and returns the instruction words found. Room
// for two words is reserved before each code line is parsed. If that fails
// parsing stops and the summary notes it. The returned error is only for I/O problems.
func Parse(r io.Reader, opts Options) ([]string, vector.Summary, error) {
	s := &vector.Store[string]{Limit: opts.Limit}
	lr := lineio.NewReader(r)
	var sum vector.Summary
	for {
		l, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s.Records(), sum, errors.Wrap(err, "reading listing")
		}
		sum.Lines = lr.Lines()
		if !IsCode(l) {
			continue
		}
		if err := s.Reserve(2); err != nil {
			if !errors.Is(err, vector.ErrOutOfMemory) {
				return s.Records(), sum, err
			}
			sum.OutOfMemory = true
			break
		}
		for _, w := range ParseLine(l) {
			if err := s.Append(w); err != nil {
				return s.Records(), sum, err
			}
		}
		sum.Vectors = s.Len()
	}
	return s.Records(), sum, nil
}

// Convert runs a full pass. The summary is written to diag first and then
// the instruction tokens to out.
func Convert(r io.Reader, out, diag io.Writer, opts Options) (vector.Summary, error) {
	words, sum, err := Parse(r, opts)
	if err != nil {
		return sum, err
	}
	if _, err := sum.WriteTo(diag); err != nil {
		return sum, errors.Wrap(err, "writing summary")
	}
	w := bufio.NewWriter(out)
	if err := Emit(w, words); err != nil {
		return sum, errors.Wrap(err, "writing instructions")
	}
	if err := w.Flush(); err != nil {
		return sum, errors.Wrap(err, "writing instructions")
	}
	return sum, nil
}
