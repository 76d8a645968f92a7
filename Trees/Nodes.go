package Trees

// index of a node in the arena. 0 is the nil node: an absent child, the parent of the
// root, and the position of End().
type index = uint32

// A node in the Tree.
// The zero value is a detached leaf. Free nodes have p pointing at themselves, which no
// linked node can have, and their l is the next free index.
type node[K, V any] struct {
	k       K
	v       V
	l, r, p index
	h       uint8 // edges to the deepest leaf below. An AVL tree of 2^32 nodes is under 47 tall.
}

// height of the subtree at i, -1 for the nil node.
func (u *Tree[K, V]) height(i index) int {
	if i == 0 {
		return -1
	}
	return int(u.a.at(i).h)
}

// setLeft links c as the left child of i, keeping the back-reference consistent.
func (u *Tree[K, V]) setLeft(i, c index) {
	u.a.at(i).l = c
	if c != 0 {
		u.a.at(c).p = i
	}
}

func (u *Tree[K, V]) setRight(i, c index) {
	u.a.at(i).r = c
	if c != 0 {
		u.a.at(c).p = i
	}
}

// replaceChild makes n take old's place under p, or the root's place when p is 0.
// n's own parent link is left to the caller.
func (u *Tree[K, V]) replaceChild(p, old, n index) {
	if p == 0 {
		u.root = n
	} else if pn := u.a.at(p); pn.l == old {
		pn.l = n
	} else {
		pn.r = n
	}
}

func (u *Tree[K, V]) leftmost(i index) index {
	for l := u.a.at(i).l; l != 0; l = u.a.at(i).l {
		i = l
	}
	return i
}

func (u *Tree[K, V]) rightmost(i index) index {
	for r := u.a.at(i).r; r != 0; r = u.a.at(i).r {
		i = r
	}
	return i
}

// successor of i in key order, 0 past the greatest key.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) successor(i index) index {
	n := u.a.at(i)
	if n.r != 0 {
		return u.leftmost(n.r)
	}
	for p := n.p; p != 0; i, p = p, u.a.at(p).p {
		if u.a.at(p).l == i {
			return p
		}
	}
	return 0
}

// predecessor of i in key order, 0 before the least key.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) predecessor(i index) index {
	n := u.a.at(i)
	if n.l != 0 {
		return u.rightmost(n.l)
	}
	for p := n.p; p != 0; i, p = p, u.a.at(p).p {
		if u.a.at(p).r == i {
			return p
		}
	}
	return 0
}
