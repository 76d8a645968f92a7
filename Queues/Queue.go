// Package Queues implements FIFO adapters over the sequence containers of this module and
// a fixed circular array queue.
package Queues

import (
	"fmt"
	"slices"
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

// Queue is implemented by every queue in this package. Elements are pushed at the back and
// popped from the front.
type Queue[T any] interface {
	Go_Containers.Container
	Push(item T) error
	Pop() (T, error)
	Front() (T, error)
	Back() (T, error)
	//Items from the front to the back.
	Items() []T
}

// ArrayQueue is a Queue stored in a ring over a fixed array.
type ArrayQueue[T any] interface {
	Queue[T]
	Capacity() int
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

func (e *EmptyQueueError) Unwrap() error {
	return Go_Containers.ErrEmpty
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b Queue[T]) bool {
	return slices.Equal(a.Items(), b.Items())
}

func values[T any](items []T) []interface{} {
	vs := make([]interface{}, len(items))
	for i, v := range items {
		vs[i] = v
	}
	return vs
}

func toString[T any](items []T) string {
	ss := make([]string, len(items))
	for i, v := range items {
		ss[i] = fmt.Sprint(v)
	}
	return "Queue\n" + strings.Join(ss, ", ")
}
