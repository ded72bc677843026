// Package asmvec turns an annotated assembly source file into a VHDL
// testbench skeleton for the CPU under test.
//
// Any line which accesses data memory must carry a comment starting with
// R or W (read or write) followed by the data read or written and the
// address accessed, space separated:
//
//	LDS R16, 0x1234    ;R AB 1234
//	STS 0xFFEE, R0     ;W 0A FFEE
//
// Every line read counts as one instruction whether it accesses memory
// or not, so the generated arrays line up with the instruction stream.
package asmvec

import (
	"bufio"
	"io"

	"github.com/jmchacon/cpuvec/lineio"
	"github.com/jmchacon/cpuvec/memory"
	"github.com/jmchacon/cpuvec/vector"
	"github.com/pkg/errors"
)

// Field widths copied out of a line.
const (
	dataLen = 2
	addrLen = 4
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ParseLine extracts the memory access described by a single source line.
// Lines without a ;R or ;W comment return an access with Direction None.
// Fields are copied verbatim and may be short (or empty) if the line ends
// early. Nothing is validated.
func ParseLine(line []byte) memory.Access {
	line = lineio.Text(line)

	// Direction follows the first comment marker.
	i := 0
	for i < len(line) && line[i] != ';' {
		i++
	}
	if i+1 >= len(line) {
		return memory.Access{Direction: memory.None}
	}
	var a memory.Access
	switch line[i+1] {
	case 'r', 'R':
		a.Direction = memory.Read
	case 'w', 'W':
		a.Direction = memory.Write
	default:
		return memory.Access{Direction: memory.None}
	}
	i += 2

	// Data starts after the rest of the direction token and any whitespace.
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	a.Data, i = field(line, i, dataLen)

	// Address follows the whitespace after the data.
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	a.Addr, _ = field(line, i, addrLen)
	return a
}

// field copies up to n bytes of line from i and returns them along with
// the index n bytes later (clamped to the line).
func field(line []byte, i, n int) (string, int) {
	end := i + n
	if end > len(line) {
		end = len(line)
	}
	return string(line[i:end]), end
}

// Options control a conversion pass.
type Options struct {
	// Limit is the most records the pass can store before it runs out
	// of memory. Zero means no limit.
	Limit int
}

// Parse reads every line from r storing one access per line. If the store
// can't grow parsing stops and the summary notes it. Everything stored up to
// that point is still returned. The returned error is only for I/O problems.
func Parse(r io.Reader, opts Options) ([]memory.Access, vector.Summary, error) {
	s := &vector.Store[memory.Access]{Limit: opts.Limit}
	lr := lineio.NewReader(r)
	var sum vector.Summary
	for {
		l, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s.Records(), sum, errors.Wrap(err, "reading assembly source")
		}
		sum.Lines = lr.Lines()
		if err := s.Reserve(1); err != nil {
			if !errors.Is(err, vector.ErrOutOfMemory) {
				return s.Records(), sum, err
			}
			sum.OutOfMemory = true
			break
		}
		if err := s.Append(ParseLine(l)); err != nil {
			return s.Records(), sum, err
		}
		sum.Vectors = s.Len()
	}
	return s.Records(), sum, nil
}

// Convert runs a full pass. The summary is written to diag first and then
// the testbench to out.
func Convert(r io.Reader, out, diag io.Writer, opts Options) (vector.Summary, error) {
	accs, sum, err := Parse(r, opts)
	if err != nil {
		return sum, err
	}
	if _, err := sum.WriteTo(diag); err != nil {
		return sum, errors.Wrap(err, "writing summary")
	}
	w := bufio.NewWriter(out)
	if err := Emit(w, accs); err != nil {
		return sum, errors.Wrap(err, "writing testbench")
	}
	if err := w.Flush(); err != nil {
		return sum, errors.Wrap(err, "writing testbench")
	}
	return sum, nil
}
