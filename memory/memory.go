// Package memory defines the data memory accesses a CPU under test
// performs for a single instruction. Each annotated source line yields
// exactly one Access whether or not it touches the data bus so the
// access sequence lines up 1:1 with the testbench clock cycles.
package memory

import "fmt"

// Direction is the bus cycle a line causes.
type Direction int

const (
	// None means no data bus cycle on this instruction.
	None Direction = iota
	// Read means the CPU reads the data bus (DataRd asserted).
	Read
	// Write means the CPU drives the data bus (DataWr asserted).
	Write
)

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Read:
		return "Read"
	case Write:
		return "Write"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Access is a single memory access record.
type Access struct {
	Direction Direction
	// Data is the byte transferred as it appeared in the source (normally 2 hex digits).
	// Only valid if Direction != None.
	Data string
	// Addr is the bus address as it appeared in the source (normally 4 hex digits).
	// Only valid if Direction != None.
	Addr string
}

// Active returns true if this access drives a bus cycle at all.
func (a Access) Active() bool {
	return a.Direction == Read || a.Direction == Write
}
