package Lists

import (
	"fmt"
	"iter"
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

type dnode[T any] struct {
	v          T
	prev, next *dnode[T]
}

// List is a doubly linked list. Elements are inserted before a position and erased at it.
// In a Circular list End() sits between the last and the first element, so it can step
// both ways; End() of a NullTerminated list can't step at all.
type List[T any] struct {
	sentinel   *dnode[T] // Circular only
	head, tail *dnode[T] // NullTerminated only
	size       int
}

var _ Go_Containers.Container = (*List[int])(nil)

func NewList[T any](topo Topology) *List[T] {
	u := new(List[T])
	if topo == Circular {
		s := new(dnode[T])
		s.prev, s.next = s, s
		u.sentinel = s
	}
	return u
}

// ListOf builds a Circular list holding vs in order.
func ListOf[T any](vs ...T) *List[T] {
	u := NewList[T](Circular)
	for _, v := range vs {
		u.PushBack(v)
	}
	return u
}

func (u *List[T]) Topology() Topology {
	if u.sentinel != nil {
		return Circular
	}
	return NullTerminated
}

func (u *List[T]) end() *dnode[T] {
	return u.sentinel
}

func (u *List[T]) first() *dnode[T] {
	if u.sentinel != nil {
		return u.sentinel.next
	}
	return u.head
}

func (u *List[T]) last() *dnode[T] {
	if u.sentinel != nil {
		return u.sentinel.prev
	}
	return u.tail
}

func (u *List[T]) Size() int {
	return u.size
}

func (u *List[T]) Empty() bool {
	return u.size == 0
}

// insertBefore pos, nil being the end of a NullTerminated list.
func (u *List[T]) insertBefore(pos *dnode[T], v T) *dnode[T] {
	n := &dnode[T]{v: v, next: pos}
	if pos == nil {
		n.prev, u.tail = u.tail, n
	} else {
		n.prev, pos.prev = pos.prev, n
	}
	if n.prev == nil {
		u.head = n
	} else {
		n.prev.next = n
	}
	u.size++
	return n
}

// unlink n and return what followed it.
func (u *List[T]) unlink(n *dnode[T]) *dnode[T] {
	if n.prev == nil {
		u.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	u.size--
	return n.next
}

func (u *List[T]) PushFront(v T) {
	u.insertBefore(u.first(), v)
}

func (u *List[T]) PushBack(v T) {
	u.insertBefore(u.end(), v)
}

func (u *List[T]) PopFront() error {
	if u.size == 0 {
		return fmt.Errorf("PopFront: %w", Go_Containers.ErrEmpty)
	}
	u.unlink(u.first())
	return nil
}

func (u *List[T]) PopBack() error {
	if u.size == 0 {
		return fmt.Errorf("PopBack: %w", Go_Containers.ErrEmpty)
	}
	u.unlink(u.last())
	return nil
}

func (u *List[T]) Front() (T, error) {
	if u.size == 0 {
		return *new(T), fmt.Errorf("Front: %w", Go_Containers.ErrEmpty)
	}
	return u.first().v, nil
}

func (u *List[T]) Back() (T, error) {
	if u.size == 0 {
		return *new(T), fmt.Errorf("Back: %w", Go_Containers.ErrEmpty)
	}
	return u.last().v, nil
}

// Insert v before pos and return its position.
func (u *List[T]) Insert(pos ListIterator[T], v T) ListIterator[T] {
	u.mine(pos)
	return ListIterator[T]{u, u.insertBefore(pos.n, v)}
}

// Erase the element at pos and return the position that followed it. ErrEmpty on an empty
// list, ErrOutOfRange at End().
func (u *List[T]) Erase(pos ListIterator[T]) (ListIterator[T], error) {
	u.mine(pos)
	if u.size == 0 {
		return u.End(), fmt.Errorf("Erase: %w", Go_Containers.ErrEmpty)
	}
	if pos.n == u.end() {
		return u.End(), fmt.Errorf("%w: erase past the end of the list", Go_Containers.ErrOutOfRange)
	}
	return ListIterator[T]{u, u.unlink(pos.n)}, nil
}

func (u *List[T]) Clear() {
	if u.sentinel != nil {
		u.sentinel.prev, u.sentinel.next = u.sentinel, u.sentinel
	}
	u.head, u.tail, u.size = nil, nil, 0
}

func (u *List[T]) Clone() *List[T] {
	c := NewList[T](u.Topology())
	for v := range u.All() {
		c.PushBack(v)
	}
	return c
}

// Assign replaces the elements of u by copies of src's, keeping u's topology.
func (u *List[T]) Assign(src *List[T]) {
	if u == src {
		return
	}
	u.Clear()
	for v := range src.All() {
		u.PushBack(v)
	}
}

// Take moves the nodes of src into u and leaves src empty. Both keep their topologies.
func (u *List[T]) Take(src *List[T]) {
	if u == src {
		return
	}
	u.Clear()
	if src.size == 0 {
		return
	}
	f, l, n := src.first(), src.last(), src.size
	src.Clear()
	f.prev, l.next = u.end(), u.end()
	if u.sentinel != nil {
		u.sentinel.next, u.sentinel.prev = f, l
	} else {
		u.head, u.tail = f, l
	}
	u.size = n
}

func (u *List[T]) Begin() ListIterator[T] {
	return ListIterator[T]{u, u.first()}
}

func (u *List[T]) End() ListIterator[T] {
	return ListIterator[T]{u, u.end()}
}

func (u *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := u.first(); n != u.end(); n = n.next {
			if !yield(n.v) {
				return
			}
		}
	}
}

func (u *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := u.last(); n != u.end(); n = n.prev {
			if !yield(n.v) {
				return
			}
		}
	}
}

func (u *List[T]) Items() []T {
	vs := make([]T, 0, u.size)
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (u *List[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (u *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("List\n")
	first := true
	for v := range u.All() {
		printSep(&sb, v, first)
		first = false
	}
	return sb.String()
}

func (u *List[T]) mine(pos ListIterator[T]) {
	if pos.l != u {
		panic(Go_Containers.ErrInvalidIterator)
	}
}

// ListIterator is a bidirectional position in a List.
type ListIterator[T any] struct {
	l *List[T]
	n *dnode[T]
}

func (it ListIterator[T]) node() *dnode[T] {
	if it.n == it.l.end() {
		panic(Go_Containers.ErrEndIterator)
	}
	return it.n
}

func (it ListIterator[T]) Value() T {
	return it.node().v
}

func (it ListIterator[T]) SetValue(v T) {
	it.node().v = v
}

// Next moves to the following element. Panics on End() of a NullTerminated list.
func (it *ListIterator[T]) Next() {
	if it.n == nil {
		panic(Go_Containers.ErrEndIterator)
	}
	it.n = it.n.next
}

// Prev moves to the preceding element, End() before the first one. Panics on End() of a
// NullTerminated list.
func (it *ListIterator[T]) Prev() {
	if it.n == nil {
		panic(Go_Containers.ErrEndIterator)
	}
	it.n = it.n.prev
}

func (it ListIterator[T]) IsEnd() bool {
	return it.n == it.l.end()
}

func (it ListIterator[T]) Equal(o ListIterator[T]) bool {
	return it.l == o.l && it.n == o.n
}
