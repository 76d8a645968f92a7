// Package Lists implements a singly linked list (Forward) and a doubly linked list (List).
// Each comes in two topologies: Circular lists link the last node back to a sentinel that
// is the end position, NullTerminated lists end in nil.
package Lists

import (
	"fmt"
	"io"
)

// Topology of the links of a list.
type Topology uint8

const (
	Circular Topology = iota
	NullTerminated
)

func (t Topology) String() string {
	switch t {
	case Circular:
		return "circular"
	case NullTerminated:
		return "null-terminated"
	}
	return fmt.Sprintf("Topology(%d)", uint8(t))
}

// printSep writes v, preceded by ", " unless first.
func printSep[T any](w io.Writer, v T, first bool) error {
	sep := ", "
	if first {
		sep = ""
	}
	_, err := fmt.Fprintf(w, "%s%v", sep, v)
	return err
}
