// Package Stacks implements a LIFO adapter over the sequence containers of this module.
package Stacks

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Vectors"
)

// Sequence is what every underlying container of a Stack provides.
type Sequence[T any] interface {
	Size() int
	Empty() bool
	Clear()
	Items() []T
}

type frontEnd[T any] interface {
	PushFront(T)
	PopFront() error
	Front() (T, error)
}

type backEnd[T any] interface {
	PushBack(T) error
	PopBack() error
	Back() (T, error)
}

// top is the end of the underlying container a Stack works on.
type top[T any] interface {
	push(T) error
	pop() error
	peek() (T, error)
}

type atFront[T any] struct{ frontEnd[T] }

func (e atFront[T]) push(v T) error {
	e.PushFront(v)
	return nil
}
func (e atFront[T]) pop() error       { return e.PopFront() }
func (e atFront[T]) peek() (T, error) { return e.Front() }

type atBack[T any] struct{ backEnd[T] }

func (e atBack[T]) push(v T) error   { return e.PushBack(v) }
func (e atBack[T]) pop() error       { return e.PopBack() }
func (e atBack[T]) peek() (T, error) { return e.Back() }

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

func (e *EmptyStackError) Unwrap() error {
	return Go_Containers.ErrEmpty
}

// Stack is a LIFO view of a Sequence. The Stack owns the Sequence from construction on.
type Stack[T any] struct {
	c        Sequence[T]
	t        top[T]
	front    bool
	capacity int // of a fixed stack, 0 otherwise
}

var _ Go_Containers.Container = (*Stack[int])(nil)

// New Stack over c. The top is the front of c when c can push and pop at the front in
// O(1), as the lists can, otherwise its back, as for vectors. Containers with neither get
// ErrUnsupported.
func New[T any](c Sequence[T]) (*Stack[T], error) {
	if f, ok := c.(frontEnd[T]); ok {
		return &Stack[T]{c: c, t: atFront[T]{f}, front: true}, nil
	}
	if b, ok := c.(backEnd[T]); ok {
		return &Stack[T]{c: c, t: atBack[T]{b}}, nil
	}
	return nil, fmt.Errorf("%w: %T has no end to push and pop", Go_Containers.ErrUnsupported, c)
}

// NewFixed creates an array backed Stack holding at most capacity elements.
func NewFixed[T any](capacity int) *Stack[T] {
	v := Vectors.New[T](Vectors.Fixed, 0, capacity)
	return &Stack[T]{c: v, t: atBack[T]{v}, capacity: v.Capacity()}
}

// Push v on top. A full fixed Stack returns *Go_Containers.FullError.
func (u *Stack[T]) Push(v T) error {
	if err := u.t.push(v); err != nil {
		if errors.Is(err, Go_Containers.ErrOverflow) {
			return &Go_Containers.FullError{Capacity: u.capacity}
		}
		return err
	}
	return nil
}

// Pop the top element. *EmptyStackError when there's none.
func (u *Stack[T]) Pop() (T, error) {
	v, err := u.Top()
	if err != nil {
		return v, err
	}
	return v, u.t.pop()
}

func (u *Stack[T]) Top() (T, error) {
	if u.c.Empty() {
		return *new(T), &EmptyStackError{}
	}
	return u.t.peek()
}

func (u *Stack[T]) Size() int {
	return u.c.Size()
}

func (u *Stack[T]) Empty() bool {
	return u.c.Empty()
}

func (u *Stack[T]) Clear() {
	u.c.Clear()
}

// Items from the bottom to the top.
func (u *Stack[T]) Items() []T {
	vs := u.c.Items()
	if u.front {
		slices.Reverse(vs)
	}
	return vs
}

// Values from the top to the bottom.
func (u *Stack[T]) Values() []interface{} {
	vs := u.Items()
	r := make([]interface{}, len(vs))
	for i, v := range vs {
		r[len(vs)-1-i] = v
	}
	return r
}

func (u *Stack[T]) String() string {
	vs := u.Values()
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = fmt.Sprint(v)
	}
	return "Stack\n" + strings.Join(ss, ", ")
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Stack[T]) bool {
	return slices.Equal(a.Items(), b.Items())
}
