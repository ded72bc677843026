package asmvec

import (
	"fmt"
	"io"

	"github.com/jmchacon/cpuvec/memory"
	"github.com/jmchacon/cpuvec/vhdl"
)

// Header is everything written ahead of the test vectors.
const Header = `library ieee;
use ieee.std_logic_1164.all;
use ieee.std_logic_arith.all;
use ieee.std_logic_unsigned.all;
use ieee.numeric_std.all;

library OpCodes;
use OpCodes.OpCodes.all;


entity cpu_test_tb is
end cpu_test_tb;


architecture TB_ARCHITECTURE of cpu_test_tb is



    -- Stimulus signals - signals mapped to the input and inout ports of tested entity
    signal  Clock    :  std_logic;
    signal  Reset    :  std_logic;
    signal  DataDB   :  std_logic_vector(7 downto 0);

    -- Observed signals - signals mapped to the output ports of tested entity
    signal  DataRd   :  std_logic;
    signal  DataWr   :  std_logic;
    signal  DataAB   :  std_logic_vector(15 downto 0);

    --Signal used to stop clock signal generators
    signal  END_SIM  :  BOOLEAN := FALSE;

    -- test value types
    type  byte_array    is array (natural range <>) of std_logic_vector(7 downto 0);
    type  addr_array    is array (natural range <>) of std_logic_vector(15 downto 0);
`

// Emit writes the testbench skeleton for accs to w: the fixed header and
// then the five test vector declarations.
func Emit(w io.Writer, accs []memory.Access) error {
	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}
	last := len(accs) - 1

	// Strobes are active low. The write pattern is low on reads and the
	// read pattern is low on writes.
	wr := make([]bool, len(accs))
	rd := make([]bool, len(accs))
	for i, a := range accs {
		wr[i] = a.Direction == memory.Read
		rd[i] = a.Direction == memory.Write
	}
	if err := strobe(w, "-- expected data bus write signal for each instruction", "DataWrTestVals", last, wr); err != nil {
		return err
	}
	if err := strobe(w, "-- expected data bus read signal for each instruction", "DataRdTestVals", last, rd); err != nil {
		return err
	}

	db := make([]vhdl.Element, len(accs))
	dbTest := make([]vhdl.Element, len(accs))
	ab := make([]vhdl.Element, len(accs))
	for i, a := range accs {
		db[i] = vhdl.Element{Text: vhdl.HighZ8}
		dbTest[i] = vhdl.Element{Text: vhdl.DontCare8}
		ab[i] = vhdl.Element{Text: vhdl.DontCare16}
		switch a.Direction {
		case memory.Read:
			db[i] = vhdl.Element{Text: vhdl.Hex(a.Data), Value: true}
		case memory.Write:
			dbTest[i] = vhdl.Element{Text: vhdl.Hex(a.Data), Value: true}
		}
		if a.Active() {
			ab[i] = vhdl.Element{Text: vhdl.Hex(a.Addr), Value: true}
		}
	}
	if err := array(w, "-- supplied data bus values for each instruction (for read operations)", "DataDBVals", "byte_array", last, db, vhdl.WideByte); err != nil {
		return err
	}
	if err := array(w, "-- expected data bus output values for each instruction (only has a value on writes)", "DataDBTestVals", "byte_array", last, dbTest, vhdl.WideByte); err != nil {
		return err
	}
	if err := array(w, "-- expected data addres bus values for each instruction", "DataABTestVals", "addr_array", last, ab, vhdl.WideAddr); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n\n")
	return err
}

func strobe(w io.Writer, comment, name string, last int, low []bool) error {
	if _, err := fmt.Fprintf(w, "\n%s\nsignal  %-14s  :  std_logic_vector(0 to %d) :=\n    ", comment, name, last); err != nil {
		return err
	}
	if err := vhdl.BitString(w, low); err != nil {
		return err
	}
	_, err := io.WriteString(w, ";\n")
	return err
}

func array(w io.Writer, comment, name, typ string, last int, elems []vhdl.Element, wide string) error {
	if _, err := fmt.Fprintf(w, "\n%s\nsignal  %-14s  :  %s(0 to %d) := (", comment, name, typ, last); err != nil {
		return err
	}
	return vhdl.Aggregate(w, elems, wide)
}
