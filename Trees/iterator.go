package Trees

import (
	"fmt"
	"iter"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

var (
	// ErrForeignIterator is the panic value for an iterator handed to a tree it doesn't belong to.
	ErrForeignIterator = fmt.Errorf("%w: iterator of another tree", Go_Containers.ErrInvalidIterator)
	// ErrStaleIterator is the panic value for an iterator whose entry was erased.
	ErrStaleIterator = fmt.Errorf("%w: entry was erased", Go_Containers.ErrInvalidIterator)
)

// Cursor is a position in a Tree. Both Iterator and ConstIterator are Cursors, and any
// two Cursors of the same tree compare with Equal.
type Cursor[K, V any] interface {
	position() (*Tree[K, V], index)
}

// Iterator is a bidirectional position in a Tree through which the value can be changed.
// It's a small value; copy it freely. Keys can't be changed through it.
type Iterator[K, V any] struct {
	t *Tree[K, V]
	i index
}

// ConstIterator is a read-only Iterator.
type ConstIterator[K, V any] struct {
	it Iterator[K, V]
}

func (u *Tree[K, V]) mustLive(i index) {
	if !u.a.live(i) {
		panic(ErrStaleIterator)
	}
}

// Begin is the position of the least key, or End() when u is empty.
func (u *Tree[K, V]) Begin() Iterator[K, V] {
	if u.root == 0 {
		return u.End()
	}
	return Iterator[K, V]{u, u.leftmost(u.root)}
}

// Last is the position of the greatest key, or End() when u is empty.
func (u *Tree[K, V]) Last() Iterator[K, V] {
	if u.root == 0 {
		return u.End()
	}
	return Iterator[K, V]{u, u.rightmost(u.root)}
}

func (u *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{u, 0}
}

func (u *Tree[K, V]) CBegin() ConstIterator[K, V] {
	return u.Begin().Const()
}

func (u *Tree[K, V]) CEnd() ConstIterator[K, V] {
	return u.End().Const()
}

// All entries in ascending key order.
func (u *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if u.root == 0 {
			return
		}
		for i := u.leftmost(u.root); i != 0; i = u.successor(i) {
			if n := u.a.at(i); !yield(n.k, n.v) {
				return
			}
		}
	}
}

// Backward yields all entries in descending key order.
func (u *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if u.root == 0 {
			return
		}
		for i := u.rightmost(u.root); i != 0; i = u.predecessor(i) {
			if n := u.a.at(i); !yield(n.k, n.v) {
				return
			}
		}
	}
}

// Keys in ascending order.
func (u *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (it Iterator[K, V]) position() (*Tree[K, V], index) {
	return it.t, it.i
}

func (it Iterator[K, V]) node() *node[K, V] {
	if it.i == 0 {
		panic(Go_Containers.ErrEndIterator)
	}
	it.t.mustLive(it.i)
	return it.t.a.at(it.i)
}

func (it Iterator[K, V]) Key() K {
	return it.node().k
}

func (it Iterator[K, V]) Value() V {
	return it.node().v
}

// ValuePtr points at the value stored in the tree.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.node().v
}

func (it Iterator[K, V]) SetValue(v V) {
	it.node().v = v
}

// Next moves to the following entry, End() after the last one. Panics on End().
// Time: O(D) worst case, O(1) amortized over a full traversal.
func (it *Iterator[K, V]) Next() {
	it.node()
	it.i = it.t.successor(it.i)
}

// Prev moves to the preceding entry, End() before the first one. Panics on End().
func (it *Iterator[K, V]) Prev() {
	it.node()
	it.i = it.t.predecessor(it.i)
}

func (it Iterator[K, V]) IsEnd() bool {
	return it.i == 0
}

func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{it}
}

// Equal reports whether it and o are the same position of the same tree.
func (it Iterator[K, V]) Equal(o Cursor[K, V]) bool {
	t, i := o.position()
	return it.t == t && it.i == i
}

func (it ConstIterator[K, V]) position() (*Tree[K, V], index) {
	return it.it.position()
}

func (it ConstIterator[K, V]) Key() K {
	return it.it.Key()
}

func (it ConstIterator[K, V]) Value() V {
	return it.it.Value()
}

func (it *ConstIterator[K, V]) Next() {
	it.it.Next()
}

func (it *ConstIterator[K, V]) Prev() {
	it.it.Prev()
}

func (it ConstIterator[K, V]) IsEnd() bool {
	return it.it.IsEnd()
}

func (it ConstIterator[K, V]) Equal(o Cursor[K, V]) bool {
	return it.it.Equal(o)
}
