package Trees

// updateHeight of i from its children's stored heights.
func (u *Tree[K, V]) updateHeight(i index) {
	n := u.a.at(i)
	n.h = uint8(1 + max(u.height(n.l), u.height(n.r)))
}

func (u *Tree[K, V]) isBalanced(i index) bool {
	n := u.a.at(i)
	bf := u.height(n.l) - u.height(n.r)
	return -1 <= bf && bf <= 1
}

// taller child of i. Equal heights go to the left child, or to the right child when toRight is set.
func (u *Tree[K, V]) taller(i index, toRight bool) index {
	n := u.a.at(i)
	hl, hr := u.height(n.l), u.height(n.r)
	if hr > hl || (hr == hl && toRight) {
		return n.r
	}
	return n.l
}

// restructure the unbalanced node z with a trinode restructuring. y is the taller child of
// z and x the taller child of y; when y's children are equally tall x is on the same side
// as y, which makes it a single rotation. a, b, c are x, y, z in key order and t0..t3 their
// remaining subtrees in key order. b takes z's place with children a and c.
// Returns b.
// Time: O(1); Space: O(1)
func (u *Tree[K, V]) restructure(z index) index {
	zn := u.a.at(z)
	y := u.taller(z, false)
	yn := u.a.at(y)
	x := u.taller(y, y == zn.r)
	xn := u.a.at(x)

	var a, b, c, t0, t1, t2, t3 index
	if zn.r == y {
		if yn.r == x { // right-right
			a, b, c = z, y, x
			t0, t1, t2, t3 = zn.l, yn.l, xn.l, xn.r
		} else { // right-left
			a, b, c = z, x, y
			t0, t1, t2, t3 = zn.l, xn.l, xn.r, yn.r
		}
	} else {
		if yn.r == x { // left-right
			a, b, c = y, x, z
			t0, t1, t2, t3 = yn.l, xn.l, xn.r, zn.r
		} else { // left-left
			a, b, c = x, y, z
			t0, t1, t2, t3 = xn.l, xn.r, yn.r, zn.r
		}
	}

	p := zn.p
	u.replaceChild(p, z, b)
	u.a.at(b).p = p
	u.setLeft(b, a)
	u.setRight(b, c)
	u.setLeft(a, t0)
	u.setRight(a, t1)
	u.setLeft(c, t2)
	u.setRight(c, t3)

	u.updateHeight(a)
	u.updateHeight(c)
	u.updateHeight(b)
	return b
}

// rebalance walks from i to the root, fixing heights and restructuring unbalanced nodes.
// It stops at the first node whose height didn't change, above which nothing can change.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) rebalance(i index) {
	for i != 0 {
		prev := u.a.at(i).h
		u.updateHeight(i)
		if !u.isBalanced(i) {
			i = u.restructure(i)
		}
		n := u.a.at(i)
		if n.h == prev {
			return
		}
		i = n.p
	}
}
