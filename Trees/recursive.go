package Trees

import (
	"fmt"
	"io"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"golang.org/x/exp/constraints"
)

// Height of the tree computed recursively from the leaves, without using stored heights.
// -1 for an empty tree.
// Time: O(N); Space: O(D)
func (u *Tree[K, V]) Height() int {
	return u.heightOf(u.root)
}

func (u *Tree[K, V]) heightOf(i index) int {
	if i == 0 {
		return -1
	}
	n := u.a.at(i)
	return 1 + max(u.heightOf(n.l), u.heightOf(n.r))
}

// PrintInorder writes every entry in key order, one per line, as
//
//	Key: "k",  Value: "v"
//
// Stops at the first write error. Recursive.
func (u *Tree[K, V]) PrintInorder(w io.Writer) error {
	return u.printInorder(w, u.root)
}

func (u *Tree[K, V]) printInorder(w io.Writer, i index) error {
	if i == 0 {
		return nil
	}
	n := u.a.at(i)
	if err := u.printInorder(w, n.l); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Key: \"%v\",  Value: \"%v\"\n", n.k, n.v); err != nil {
		return err
	}
	return u.printInorder(w, n.r)
}

// MaxValue is the greatest value in t, found by visiting every node recursively.
// ErrEmpty when t is empty.
// Time: O(N); Space: O(D)
func MaxValue[K any, V constraints.Ordered](t *Tree[K, V]) (V, error) {
	if t.root == 0 {
		return *new(V), fmt.Errorf("MaxValue: %w", Go_Containers.ErrEmpty)
	}
	return maxValue(t, t.root), nil
}

func maxValue[K any, V constraints.Ordered](t *Tree[K, V], i index) V {
	n := t.a.at(i)
	m := n.v
	if n.l != 0 {
		m = max(m, maxValue(t, n.l))
	}
	if n.r != 0 {
		m = max(m, maxValue(t, n.r))
	}
	return m
}

// Sum of all values in t, recursively. 0 for an empty tree.
// Time: O(N); Space: O(D)
func Sum[K any, V Go_Containers.Number](t *Tree[K, V]) V {
	return sum(t, t.root)
}

func sum[K any, V Go_Containers.Number](t *Tree[K, V], i index) V {
	if i == 0 {
		return 0
	}
	n := t.a.at(i)
	return sum(t, n.l) + n.v + sum(t, n.r)
}
