package Trees

// Insert k with v unless k is already present. Returns the position of k and true when a
// new entry was made, or the position of the existing entry and false; that entry is left
// unchanged.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	var parent index
	c := 0
	for i := u.root; i != 0; {
		n := u.a.at(i)
		if c = u.cmp(k, n.k); c == 0 {
			return Iterator[K, V]{u, i}, false
		}
		parent = i
		if c < 0 {
			i = n.l
		} else {
			i = n.r
		}
	}
	i := u.a.alloc(k, v)
	if parent == 0 {
		u.root = i
	} else if c < 0 {
		u.setLeft(parent, i)
	} else {
		u.setRight(parent, i)
	}
	u.size++
	u.rebalance(parent)
	return Iterator[K, V]{u, i}, true
}

// Erase the entry with key k. Returns 1 if there was one, 0 otherwise.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Erase(k K) int {
	i := u.find(k)
	if i == 0 {
		return 0
	}
	u.erase(i)
	return 1
}

// EraseAt erases the entry at pos, which must belong to u. Returns the position of the
// entry that followed it, End() if there's none. Erasing at End() is a no-op.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) EraseAt(pos Cursor[K, V]) Iterator[K, V] {
	t, i := pos.position()
	if t != u {
		panic(ErrForeignIterator)
	}
	if i == 0 {
		return u.End()
	}
	u.mustLive(i)
	return Iterator[K, V]{u, u.erase(i)}
}

// erase the node i and return the node now holding its successor.
// A node with two children takes over the key and value of its successor, whose node is
// unlinked instead; i is then the successor's position.
func (u *Tree[K, V]) erase(i index) index {
	n := u.a.at(i)
	if n.l != 0 && n.r != 0 {
		s := u.leftmost(n.r)
		sn := u.a.at(s)
		n.k, n.v = sn.k, sn.v
		u.erase(s)
		return i
	}
	next := u.successor(i)
	child, parent := n.l, n.p
	if child == 0 {
		child = n.r
	}
	u.replaceChild(parent, i, child)
	if child != 0 {
		u.a.at(child).p = parent
	}
	u.a.release(i)
	u.size--
	u.rebalance(parent)
	return next
}
