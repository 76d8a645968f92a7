package Trees

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree mapping unique keys to values. The heights of the two subtrees of
// every node differ by at most one, so lookups, insertions and erasures are O(log n).
// The zero Tree isn't usable; build one with New, NewFunc, NewOrdered or NewComparator.
// A Tree must not be used by several goroutines at once without external locking.
type Tree[K, V any] struct {
	a    arena[K, V]
	root index
	size int
	cmp  func(K, K) int
}

// Pair is a key with its value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Ordered is implemented by key types that order themselves.
type Ordered[T any] interface {
	LessThan(T) bool
	Equals(T) bool
}

// New empty Tree ordered by cmp.Compare.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty Tree ordered by c, which returns a negative number when a < b,
// 0 when a == b and a positive number otherwise.
func NewFunc[K, V any](c func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: c}
}

// NewOrdered creates an empty Tree over keys that compare themselves.
func NewOrdered[K Ordered[K], V any]() *Tree[K, V] {
	return NewFunc[K, V](func(a, b K) int {
		if a.Equals(b) {
			return 0
		} else if a.LessThan(b) {
			return -1
		}
		return 1
	})
}

// NewComparator creates an empty Tree ordered by a gods comparator such as utils.StringComparator.
func NewComparator[K, V any](c utils.Comparator) *Tree[K, V] {
	return NewFunc[K, V](func(a, b K) int {
		return c(a, b)
	})
}

// From builds a Tree by inserting the pairs in order. The first occurrence of a key wins.
func From[K constraints.Ordered, V any](pairs ...Pair[K, V]) *Tree[K, V] {
	return FromFunc(cmp.Compare[K], pairs...)
}

// FromFunc is From with an explicit ordering.
func FromFunc[K, V any](c func(a, b K) int, pairs ...Pair[K, V]) *Tree[K, V] {
	u := NewFunc[K, V](c)
	for _, p := range pairs {
		u.Insert(p.Key, p.Value)
	}
	return u
}

// Clone makes a deep copy with the same shape and ordering.
// Time: O(N); Space: O(D)
func (u *Tree[K, V]) Clone() *Tree[K, V] {
	c := &Tree[K, V]{size: u.size, cmp: u.cmp}
	c.root = u.copyInto(&c.a, u.root, 0)
	return c
}

// copyInto copies the subtree at i into dst under parent, pre-order. Heights are copied.
func (u *Tree[K, V]) copyInto(dst *arena[K, V], i, parent index) index {
	if i == 0 {
		return 0
	}
	s := u.a.at(i)
	j := dst.alloc(s.k, s.v)
	n := dst.at(j)
	n.h, n.p = s.h, parent
	n.l = u.copyInto(dst, s.l, j)
	n.r = u.copyInto(dst, s.r, j)
	return j
}

// Assign replaces the content of u by a copy of src.
func (u *Tree[K, V]) Assign(src *Tree[K, V]) {
	if u == src {
		return
	}
	u.Take(src.Clone())
}

// Take moves the content and ordering of src into u, leaving src empty.
// Iterators of both trees are invalidated.
func (u *Tree[K, V]) Take(src *Tree[K, V]) {
	if u == src {
		return
	}
	u.Clear()
	u.a, u.root, u.size, u.cmp = src.a, src.root, src.size, src.cmp
	src.a, src.root, src.size = arena[K, V]{}, 0, 0
}

// Swap the contents of u and o. Iterators of both trees are invalidated.
func (u *Tree[K, V]) Swap(o *Tree[K, V]) {
	*u, *o = *o, *u
}

// Clear releases every node to the free list, post-order. The arena keeps its chunks, so
// refilling the tree allocates nothing until it outgrows them.
// Time: O(N); Space: O(D)
func (u *Tree[K, V]) Clear() {
	u.releaseAll(u.root)
	u.root, u.size = 0, 0
}

func (u *Tree[K, V]) releaseAll(i index) {
	if i == 0 {
		return
	}
	n := u.a.at(i)
	u.releaseAll(n.l)
	u.releaseAll(n.r)
	u.a.release(i)
}

// Size of the tree.
func (u *Tree[K, V]) Size() int {
	return u.size
}

func (u *Tree[K, V]) Empty() bool {
	return u.size == 0
}

// find the node holding k, 0 if there's none.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) find(k K) index {
	for i := u.root; i != 0; {
		n := u.a.at(i)
		switch c := u.cmp(k, n.k); {
		case c < 0:
			i = n.l
		case c > 0:
			i = n.r
		default:
			return i
		}
	}
	return 0
}

func (u *Tree[K, V]) Find(k K) Iterator[K, V] {
	return Iterator[K, V]{u, u.find(k)}
}

func (u *Tree[K, V]) CFind(k K) ConstIterator[K, V] {
	return u.Find(k).Const()
}

func (u *Tree[K, V]) Contains(k K) bool {
	return u.find(k) != 0
}

func (u *Tree[K, V]) At(k K) (V, error) {
	if i := u.find(k); i != 0 {
		return u.a.at(i).v, nil
	}
	return *new(V), fmt.Errorf("%w: %v", Go_Containers.ErrKeyNotFound, k)
}

// Ref returns a pointer to the value of k. It stays valid until k is erased or the tree is cleared.
func (u *Tree[K, V]) Ref(k K) (*V, error) {
	if i := u.find(k); i != 0 {
		return &u.a.at(i).v, nil
	}
	return nil, fmt.Errorf("%w: %v", Go_Containers.ErrKeyNotFound, k)
}

func (u *Tree[K, V]) Entry(k K) *V {
	it, _ := u.Insert(k, *new(V))
	return &u.a.at(it.i).v
}

// Values in key order.
func (u *Tree[K, V]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	for _, v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (u *Tree[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("AVLTree\n")
	u.Draw(&sb)
	return sb.String()
}
