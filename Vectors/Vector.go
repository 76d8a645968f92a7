// Package Vectors implements a contiguous dynamic array whose capacity is either fixed at
// construction or extended on demand.
package Vectors

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"golang.org/x/exp/constraints"
)

// Policy decides what happens when a Vector runs out of capacity.
type Policy uint8

const (
	// Extendable vectors reallocate: 8 slots when empty, doubled after that.
	Extendable Policy = iota
	// Fixed vectors keep their capacity and refuse to grow past it.
	Fixed
)

const (
	initialCapacity      = 8
	defaultFixedCapacity = 64
)

// Vector is a sequence of elements stored contiguously. len(items) is the size and
// cap(items) the capacity.
type Vector[T any] struct {
	items  []T
	policy Policy
}

var _ Go_Containers.Container = (*Vector[int])(nil)

// New Vector of size zero values. The capacity is at least size; a Fixed vector asked for
// no capacity gets 64.
func New[T any](policy Policy, size, capacity int) *Vector[T] {
	if capacity < size {
		capacity = size
	} else if policy == Fixed && capacity == 0 {
		capacity = defaultFixedCapacity
	}
	return &Vector[T]{make([]T, size, capacity), policy}
}

// Of builds an Extendable vector holding vs, with no spare capacity.
func Of[T any](vs ...T) *Vector[T] {
	return &Vector[T]{slices.Clone(vs), Extendable}
}

func (u *Vector[T]) Policy() Policy {
	return u.policy
}

func (u *Vector[T]) Size() int {
	return len(u.items)
}

func (u *Vector[T]) Capacity() int {
	return cap(u.items)
}

func (u *Vector[T]) Empty() bool {
	return len(u.items) == 0
}

func (u *Vector[T]) outOfRange(i int) error {
	return fmt.Errorf("%w: index %d with size %d", Go_Containers.ErrOutOfRange, i, len(u.items))
}

// At returns the element at i, ErrOutOfRange unless 0 <= i < Size().
func (u *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(u.items) {
		return *new(T), u.outOfRange(i)
	}
	return u.items[i], nil
}

func (u *Vector[T]) Set(i int, v T) error {
	if i < 0 || i >= len(u.items) {
		return u.outOfRange(i)
	}
	u.items[i] = v
	return nil
}

// Get the element at i without a bounds check of its own.
func (u *Vector[T]) Get(i int) T {
	return u.items[i]
}

func (u *Vector[T]) Front() (T, error) {
	if len(u.items) == 0 {
		return *new(T), fmt.Errorf("Front: %w", Go_Containers.ErrEmpty)
	}
	return u.items[0], nil
}

func (u *Vector[T]) Back() (T, error) {
	if len(u.items) == 0 {
		return *new(T), fmt.Errorf("Back: %w", Go_Containers.ErrEmpty)
	}
	return u.items[len(u.items)-1], nil
}

// reserve room for one more element. ErrOverflow for a full Fixed vector.
// Time: amortized O(1)
func (u *Vector[T]) reserve() error {
	if len(u.items) < cap(u.items) {
		return nil
	}
	if u.policy == Fixed {
		return fmt.Errorf("%w: capacity %d", Go_Containers.ErrOverflow, cap(u.items))
	}
	c := initialCapacity
	if cap(u.items) != 0 {
		c = 2 * cap(u.items)
	}
	nu := make([]T, len(u.items), c)
	copy(nu, u.items)
	u.items = nu
	return nil
}

func (u *Vector[T]) PushBack(v T) error {
	if err := u.reserve(); err != nil {
		return err
	}
	u.items = append(u.items, v)
	return nil
}

// PopBack removes the last element, ErrUnderflow when there's none.
func (u *Vector[T]) PopBack() error {
	n := len(u.items)
	if n == 0 {
		return fmt.Errorf("PopBack: %w", Go_Containers.ErrUnderflow)
	}
	u.items[n-1] = *new(T)
	u.items = u.items[:n-1]
	return nil
}

// Insert v before pos, 0 <= pos <= Size(). Returns the index of v.
// Time: O(N)
func (u *Vector[T]) Insert(pos int, v T) (int, error) {
	if pos < 0 || pos > len(u.items) {
		return pos, u.outOfRange(pos)
	}
	if err := u.reserve(); err != nil {
		return pos, err
	}
	u.items = slices.Insert(u.items, pos, v)
	return pos, nil
}

// Erase the element at pos. Returns the index of the element that followed it.
// Time: O(N)
func (u *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= len(u.items) {
		return pos, u.outOfRange(pos)
	}
	u.items = slices.Delete(u.items, pos, pos+1)
	return pos, nil
}

// Clear sets the size to 0 and keeps the capacity.
func (u *Vector[T]) Clear() {
	clear(u.items)
	u.items = u.items[:0]
}

// Clone copies u. An Extendable clone is shrunk to fit, a Fixed one keeps the capacity.
func (u *Vector[T]) Clone() *Vector[T] {
	c := len(u.items)
	if u.policy == Fixed {
		c = cap(u.items)
	}
	nu := make([]T, len(u.items), c)
	copy(nu, u.items)
	return &Vector[T]{nu, u.policy}
}

// Assign copies the elements of src into u. A Fixed vector keeps its capacity and fails
// with ErrOverflow, unchanged, when src doesn't fit.
func (u *Vector[T]) Assign(src *Vector[T]) error {
	if u == src {
		return nil
	}
	if u.policy == Fixed {
		if len(src.items) > cap(u.items) {
			return fmt.Errorf("%w: %d elements into capacity %d", Go_Containers.ErrOverflow, len(src.items), cap(u.items))
		}
		clear(u.items)
		u.items = append(u.items[:0], src.items...)
		return nil
	}
	u.items = src.Clone().items
	return nil
}

// Take moves the elements of src into u and leaves src empty with no capacity. A Fixed
// vector of another capacity takes the elements only, as Assign does.
func (u *Vector[T]) Take(src *Vector[T]) error {
	if u == src {
		return nil
	}
	if u.policy == Fixed && cap(u.items) != cap(src.items) {
		if err := u.Assign(src); err != nil {
			return err
		}
		src.items = nil
		return nil
	}
	u.items, src.items = src.items, nil
	return nil
}

// All yields the index and element of every element in order.
func (u *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(u.items)
}

// Items is a copy of the elements.
func (u *Vector[T]) Items() []T {
	return slices.Clone(u.items)
}

func (u *Vector[T]) Values() []interface{} {
	vs := make([]interface{}, len(u.items))
	for i, v := range u.items {
		vs[i] = v
	}
	return vs
}

func (u *Vector[T]) String() string {
	vs := make([]string, len(u.items))
	for i, v := range u.items {
		vs[i] = fmt.Sprint(v)
	}
	return "Vector\n" + strings.Join(vs, ", ")
}

// CompareFunc compares u and o lexicographically, a shorter prefix first.
func (u *Vector[T]) CompareFunc(o *Vector[T], c func(T, T) int) int {
	return slices.CompareFunc(u.items, o.items, c)
}

func (u *Vector[T]) EqualFunc(o *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(u.items, o.items, eq)
}

func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.items, b.items)
}

func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.items, b.items)
}
