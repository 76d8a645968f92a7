package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// CompareFunc orders u and o lexicographically over their (key, value) pairs in key order,
// keys by u's ordering and values by vcmp; a tree that is a prefix of the other is smaller.
// Time: O(N)
func (u *Tree[K, V]) CompareFunc(o *Tree[K, V], vcmp func(V, V) int) int {
	for i, j := u.first(), o.first(); i != 0 && j != 0; i, j = u.successor(i), o.successor(j) {
		a, b := u.a.at(i), o.a.at(j)
		if c := u.cmp(a.k, b.k); c != 0 {
			return c
		}
		if c := vcmp(a.v, b.v); c != 0 {
			return c
		}
	}
	return cmp.Compare(u.size, o.size)
}

// EqualFunc reports whether u and o hold the same keys with values equal under veq.
func (u *Tree[K, V]) EqualFunc(o *Tree[K, V], veq func(V, V) bool) bool {
	if u.size != o.size {
		return false
	}
	for i, j := u.first(), o.first(); i != 0; i, j = u.successor(i), o.successor(j) {
		a, b := u.a.at(i), o.a.at(j)
		if u.cmp(a.k, b.k) != 0 || !veq(a.v, b.v) {
			return false
		}
	}
	return true
}

// Compare a and b with cmp.Compare on values. See CompareFunc.
func Compare[K any, V constraints.Ordered](a, b *Tree[K, V]) int {
	return a.CompareFunc(b, cmp.Compare[V])
}

// Equal reports whether a and b hold the same entries.
func Equal[K any, V comparable](a, b *Tree[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

func (u *Tree[K, V]) first() index {
	if u.root == 0 {
		return 0
	}
	return u.leftmost(u.root)
}
