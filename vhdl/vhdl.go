// Package vhdl formats the literal and aggregate text the converters
// write into VHDL source. Output column alignment matters to the people
// reading the generated testbench so separators are fixed width.
package vhdl

import (
	"fmt"
	"io"
	"strings"
)

// PerLine is how many aggregate elements go on one output line.
const PerLine = 5

// Placeholder literals for elements that carry no value.
const (
	HighZ8    = `"ZZZZZZZZ"`
	DontCare8 = `"--------"`
	// DontCare16 is the 16 bit address don't care.
	DontCare16 = `"----------------"`
)

// Separators written after an element of an aggregate. The wide ones pad
// a hex literal out to the width of the matching placeholder.
const (
	Narrow     = ", "
	WideByte   = ",      "
	WideAddr   = ",            "
	terminator = " );\n"
)

// Hex returns v as a VHDL hex bit string literal (X"v"). v is written as is.
func Hex(v string) string {
	return `X"` + v + `"`
}

// BitString writes a quoted bit string with one character per entry of
// lowBits. A true entry writes '0' since the strobes are active low.
func BitString(w io.Writer, lowBits []bool) error {
	var b strings.Builder
	b.Grow(len(lowBits) + 2)
	b.WriteByte('"')
	for _, low := range lowBits {
		if low {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	b.WriteByte('"')
	_, err := io.WriteString(w, b.String())
	return err
}

// Element is one entry of an aggregate.
type Element struct {
	// Text is the literal written for this element.
	Text string
	// Value is set when Text carries data rather than a placeholder and
	// controls which separator follows it.
	Value bool
}

// Aggregate writes elements as the body of a positional aggregate which
// the caller has already opened with "(". Every PerLine elements start on
// a new line indented 4 spaces. An element with Value set is followed by
// wide, any other by Narrow. The last element is followed by " );" and a
// newline. An empty aggregate is written as just " );".
func Aggregate(w io.Writer, elems []Element, wide string) error {
	var b strings.Builder
	for i, e := range elems {
		if i%PerLine == 0 {
			b.WriteString("\n    ")
		}
		b.WriteString(e.Text)
		if i == len(elems)-1 {
			break
		}
		if e.Value {
			b.WriteString(wide)
		} else {
			b.WriteString(Narrow)
		}
	}
	b.WriteString(terminator)
	_, err := io.WriteString(w, b.String())
	return err
}

// Tokens writes each word as a hex literal followed by ", ". A newline
// precedes every group of PerLine tokens and one more ends the output.
// This is meant to be pasted into an existing aggregate so nothing else
// is written.
func Tokens(w io.Writer, words []string) error {
	var b strings.Builder
	for i, v := range words {
		if i%PerLine == 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s%s", Hex(v), Narrow)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
