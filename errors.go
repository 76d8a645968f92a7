package Go_Containers

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("containers: invalid operation on an empty container")
	// ErrKeyNotFound is returned by bounds-checked lookups of absent keys.
	ErrKeyNotFound = errors.New("containers: key not found")
	// ErrOutOfRange is returned for an index or position outside the container.
	ErrOutOfRange = errors.New("containers: index out of range")
	// ErrOverflow is returned when a fixed capacity container is full.
	ErrOverflow = errors.New("containers: insufficient capacity")
	// ErrUnderflow is returned when removing from an empty fixed container.
	ErrUnderflow = errors.New("containers: nothing to remove")
	// ErrUnsupported is returned by adapters given a container without the needed ends.
	ErrUnsupported = errors.New("containers: unsupported underlying container")

	// ErrEndIterator is the panic value for dereferencing or stepping an end iterator.
	ErrEndIterator = errors.New("containers: end iterator cannot be dereferenced or advanced")
	// ErrInvalidIterator is the panic value for an iterator of another container, or of an
	// element that has been erased.
	ErrInvalidIterator = errors.New("containers: invalid iterator")
)

// FullError is returned by fixed capacity adapters that can't take another element.
type FullError struct {
	Capacity int
}

func (e *FullError) Error() string {
	return fmt.Sprintf("Container is Full: capacity %d reached.", e.Capacity)
}

func (e *FullError) Unwrap() error {
	return ErrOverflow
}
