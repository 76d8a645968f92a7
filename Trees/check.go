package Trees

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error Check returns.
var ErrCorrupt = errors.New("trees: corrupt tree")

// Check walks the whole tree and returns the first structural fault it finds: a key out of
// order, a stored height that disagrees with the children, a node out of balance, a wrong
// parent link, a released node still linked, or a size that doesn't match the node count.
// Recursive.
// Time: O(N); Space: O(D)
func (u *Tree[K, V]) Check() error {
	if u.root != 0 && u.a.at(u.root).p != 0 {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, u.a.at(u.root).k)
	}
	n, err := u.check(u.root, 0, 0, 0)
	if err != nil {
		return err
	}
	if n != u.size {
		return fmt.Errorf("%w: size is %d, counted %d nodes", ErrCorrupt, u.size, n)
	}
	return nil
}

// check the subtree at i, whose keys must lie strictly between the keys of the nodes lo and
// hi when those aren't 0. Returns the number of nodes.
func (u *Tree[K, V]) check(i, parent, lo, hi index) (int, error) {
	if i == 0 {
		return 0, nil
	}
	if !u.a.live(i) {
		return 0, fmt.Errorf("%w: released node %d is linked", ErrCorrupt, i)
	}
	n := u.a.at(i)
	switch {
	case n.p != parent:
		return 0, fmt.Errorf("%w: key %v has a wrong parent link", ErrCorrupt, n.k)
	case lo != 0 && u.cmp(u.a.at(lo).k, n.k) >= 0, hi != 0 && u.cmp(n.k, u.a.at(hi).k) >= 0:
		return 0, fmt.Errorf("%w: key %v is out of order", ErrCorrupt, n.k)
	case int(n.h) != 1+max(u.height(n.l), u.height(n.r)):
		return 0, fmt.Errorf("%w: key %v has height %d", ErrCorrupt, n.k, n.h)
	case !u.isBalanced(i):
		return 0, fmt.Errorf("%w: key %v is out of balance", ErrCorrupt, n.k)
	}
	nl, err := u.check(n.l, i, lo, i)
	if err != nil {
		return 0, err
	}
	nr, err := u.check(n.r, i, i, hi)
	if err != nil {
		return 0, err
	}
	return 1 + nl + nr, nil
}

// Corrupt reports whether Check finds a fault.
func (u *Tree[K, V]) Corrupt() bool {
	return u.Check() != nil
}
