package Lists

import (
	"fmt"
	"io"
	"iter"
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

type fnode[T any] struct {
	v    T
	next *fnode[T]
}

// Forward is a singly linked list with a tail pointer, so both ends can be pushed in O(1)
// and the front popped in O(1). Positions are ForwardIterators; an element is inserted or
// erased after a position. BeforeBegin() is the same position as End().
type Forward[T any] struct {
	sentinel   *fnode[T] // the end position of a Circular list, nil otherwise
	head, tail *fnode[T] // head is only used by NullTerminated lists
	size       int
}

var _ Go_Containers.Container = (*Forward[int])(nil)

// NewForward creates an empty list.
func NewForward[T any](topo Topology) *Forward[T] {
	u := new(Forward[T])
	if topo == Circular {
		u.sentinel = new(fnode[T])
		u.sentinel.next = u.sentinel
	}
	return u
}

// ForwardOf builds a Circular list holding vs in order.
func ForwardOf[T any](vs ...T) *Forward[T] {
	u := NewForward[T](Circular)
	for _, v := range vs {
		u.PushBack(v)
	}
	return u
}

func (u *Forward[T]) Topology() Topology {
	if u.sentinel != nil {
		return Circular
	}
	return NullTerminated
}

func (u *Forward[T]) end() *fnode[T] {
	return u.sentinel
}

func (u *Forward[T]) first() *fnode[T] {
	if u.sentinel != nil {
		return u.sentinel.next
	}
	return u.head
}

func (u *Forward[T]) setFirst(n *fnode[T]) {
	if u.sentinel != nil {
		u.sentinel.next = n
	} else {
		u.head = n
	}
}

func (u *Forward[T]) Size() int {
	return u.size
}

func (u *Forward[T]) Empty() bool {
	return u.size == 0
}

// insertAfter pos, which is end() for the front.
func (u *Forward[T]) insertAfter(pos *fnode[T], v T) *fnode[T] {
	n := &fnode[T]{v: v}
	if pos == u.end() {
		n.next = u.first()
		u.setFirst(n)
	} else {
		n.next = pos.next
		pos.next = n
	}
	if u.size == 0 || pos == u.tail {
		u.tail = n
	}
	u.size++
	return n
}

// eraseAfter pos, which must have a successor.
func (u *Forward[T]) eraseAfter(pos *fnode[T]) *fnode[T] {
	var victim *fnode[T]
	if pos == u.end() {
		victim = u.first()
		u.setFirst(victim.next)
	} else {
		victim = pos.next
		pos.next = victim.next
	}
	if victim == u.tail {
		if pos == u.end() {
			u.tail = nil
		} else {
			u.tail = pos
		}
	}
	u.size--
	return victim.next
}

func (u *Forward[T]) PushFront(v T) {
	u.insertAfter(u.end(), v)
}

func (u *Forward[T]) PushBack(v T) {
	if u.size == 0 {
		u.insertAfter(u.end(), v)
	} else {
		u.insertAfter(u.tail, v)
	}
}

// PopFront removes the first element, ErrEmpty when there's none.
func (u *Forward[T]) PopFront() error {
	if u.size == 0 {
		return fmt.Errorf("PopFront: %w", Go_Containers.ErrEmpty)
	}
	u.eraseAfter(u.end())
	return nil
}

func (u *Forward[T]) Front() (T, error) {
	if u.size == 0 {
		return *new(T), fmt.Errorf("Front: %w", Go_Containers.ErrEmpty)
	}
	return u.first().v, nil
}

func (u *Forward[T]) Back() (T, error) {
	if u.size == 0 {
		return *new(T), fmt.Errorf("Back: %w", Go_Containers.ErrEmpty)
	}
	return u.tail.v, nil
}

// InsertAfter inserts v after pos and returns its position. BeforeBegin() inserts at the front.
func (u *Forward[T]) InsertAfter(pos ForwardIterator[T], v T) ForwardIterator[T] {
	u.mine(pos)
	return ForwardIterator[T]{u, u.insertAfter(pos.n, v)}
}

// EraseAfter erases the element following pos and returns the position after it. Erasing
// after the last element does nothing and returns End(). ErrEmpty on an empty list.
func (u *Forward[T]) EraseAfter(pos ForwardIterator[T]) (ForwardIterator[T], error) {
	u.mine(pos)
	if u.size == 0 {
		return u.End(), fmt.Errorf("EraseAfter: %w", Go_Containers.ErrEmpty)
	}
	if pos.n == u.tail {
		return u.End(), nil
	}
	return ForwardIterator[T]{u, u.eraseAfter(pos.n)}, nil
}

func (u *Forward[T]) Clear() {
	u.setFirst(u.end())
	u.tail, u.size = nil, 0
}

// Clone copies u with the same topology.
func (u *Forward[T]) Clone() *Forward[T] {
	c := NewForward[T](u.Topology())
	for v := range u.All() {
		c.PushBack(v)
	}
	return c
}

// Assign replaces the elements of u by copies of src's, keeping u's topology.
func (u *Forward[T]) Assign(src *Forward[T]) {
	if u == src {
		return
	}
	u.Clear()
	for v := range src.All() {
		u.PushBack(v)
	}
}

// Take moves the nodes of src into u and leaves src empty. Both keep their topologies.
func (u *Forward[T]) Take(src *Forward[T]) {
	if u == src {
		return
	}
	u.Clear()
	if src.size == 0 {
		return
	}
	u.setFirst(src.first())
	u.tail, u.size = src.tail, src.size
	u.tail.next = u.end()
	src.Clear()
}

func (u *Forward[T]) BeforeBegin() ForwardIterator[T] {
	return u.End()
}

func (u *Forward[T]) Begin() ForwardIterator[T] {
	return ForwardIterator[T]{u, u.first()}
}

func (u *Forward[T]) End() ForwardIterator[T] {
	return ForwardIterator[T]{u, u.end()}
}

func (u *Forward[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := u.first(); n != u.end(); n = n.next {
			if !yield(n.v) {
				return
			}
		}
	}
}

func (u *Forward[T]) Items() []T {
	vs := make([]T, 0, u.size)
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (u *Forward[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (u *Forward[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Forward\n")
	u.PrintForward(&sb)
	return sb.String()
}

// Reverse the order of the nodes in place, recursively. No element is copied or moved.
// Time: O(N); Space: O(N)
func (u *Forward[T]) Reverse() {
	if u.size < 2 {
		return
	}
	oldFirst := u.first()
	u.setFirst(u.reverse(oldFirst))
	oldFirst.next = u.end()
	u.tail = oldFirst
}

// reverse the links from n to the tail and return the tail.
func (u *Forward[T]) reverse(n *fnode[T]) *fnode[T] {
	if n == u.tail {
		return n
	}
	h := u.reverse(n.next)
	n.next.next = n
	return h
}

// Find the first element matching eq, recursively. End() when there's none.
func (u *Forward[T]) Find(eq func(T) bool) ForwardIterator[T] {
	return ForwardIterator[T]{u, u.find(u.first(), eq)}
}

func (u *Forward[T]) find(n *fnode[T], eq func(T) bool) *fnode[T] {
	if n == u.end() || eq(n.v) {
		return n
	}
	return u.find(n.next, eq)
}

// Sum of the elements of l, recursively.
func Sum[T Go_Containers.Number](l *Forward[T]) T {
	return sum(l, l.first())
}

func sum[T Go_Containers.Number](l *Forward[T], n *fnode[T]) T {
	if n == l.end() {
		return 0
	}
	return n.v + sum(l, n.next)
}

// PrintForward writes the elements front to back separated by ", ", recursively.
func (u *Forward[T]) PrintForward(w io.Writer) error {
	return u.printForward(w, u.first(), true)
}

func (u *Forward[T]) printForward(w io.Writer, n *fnode[T], first bool) error {
	if n == u.end() {
		return nil
	}
	if err := printSep(w, n.v, first); err != nil {
		return err
	}
	return u.printForward(w, n.next, false)
}

// PrintBackward writes the elements back to front separated by ", ", recursively.
func (u *Forward[T]) PrintBackward(w io.Writer) error {
	return u.printBackward(w, u.first())
}

func (u *Forward[T]) printBackward(w io.Writer, n *fnode[T]) error {
	if n == u.end() {
		return nil
	}
	if err := u.printBackward(w, n.next); err != nil {
		return err
	}
	return printSep(w, n.v, n.next == u.end())
}

func (u *Forward[T]) mine(pos ForwardIterator[T]) {
	if pos.l != u {
		panic(Go_Containers.ErrInvalidIterator)
	}
}

// ForwardIterator is a position in a Forward list.
type ForwardIterator[T any] struct {
	l *Forward[T]
	n *fnode[T]
}

func (it ForwardIterator[T]) node() *fnode[T] {
	if it.n == it.l.end() {
		panic(Go_Containers.ErrEndIterator)
	}
	return it.n
}

func (it ForwardIterator[T]) Value() T {
	return it.node().v
}

func (it ForwardIterator[T]) SetValue(v T) {
	it.node().v = v
}

// Next moves to the following element. End() of a Circular list is also its BeforeBegin()
// and moves to Begin(); End() of a NullTerminated list can't move.
func (it *ForwardIterator[T]) Next() {
	if it.n == nil {
		panic(Go_Containers.ErrEndIterator)
	}
	it.n = it.n.next
}

func (it ForwardIterator[T]) IsEnd() bool {
	return it.n == it.l.end()
}

func (it ForwardIterator[T]) Equal(o ForwardIterator[T]) bool {
	return it.l == o.l && it.n == o.n
}
