// Package lineio reads input one bounded length line at a time.
// A line is at most MaxLineSize-1 bytes including its
// newline. Anything past that is returned as the start of the next line.
package lineio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// MaxLineSize is the size of the line buffer, including room for a terminator.
const MaxLineSize = 300

// Reader returns successive lines from an underlying reader and counts them.
type Reader struct {
	r     *bufio.Reader
	buf   []byte
	lines int
}

// NewReader returns a Reader pulling from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   bufio.NewReader(r),
		buf: make([]byte, 0, MaxLineSize),
	}
}

// Next returns the next line including its trailing newline (if it had one
// before the size limit). The returned slice is only valid until the next call.
// At end of input it returns io.EOF. A final line without a newline is still
// returned with a nil error.
func (l *Reader) Next() ([]byte, error) {
	l.buf = l.buf[:0]
	for len(l.buf) < MaxLineSize-1 {
		c, err := l.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading line %d", l.lines+1)
		}
		l.buf = append(l.buf, c)
		if c == '\n' {
			break
		}
	}
	if len(l.buf) == 0 {
		return nil, io.EOF
	}
	l.lines++
	return l.buf, nil
}

// Lines returns how many lines have been returned so far.
func (l *Reader) Lines() int {
	return l.lines
}

// Text trims a line down to what a parser should look at: everything
// before the first NUL and without the trailing newline.
func Text(line []byte) []byte {
	if i := bytes.IndexByte(line, 0); i >= 0 {
		line = line[:i]
	}
	return bytes.TrimSuffix(line, []byte{'\n'})
}
