package Trees

import (
	"fmt"
	"math"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

const (
	logChunkLen = 6
	chunkLen    = 1 << logChunkLen
)

// ErrArenaExhausted is the panic value when a tree already holds every index it can address.
var ErrArenaExhausted = fmt.Errorf("%w: node arena exhausted", Go_Containers.ErrOverflow)

// arena owns the nodes of one tree. Nodes live in fixed size chunks that are never moved,
// so pointers into a chunk stay valid while the arena grows. Released indexes are kept in a
// linked list threaded through node.l and are handed out again before new slots are used.
// Slot 0 is never handed out.
type arena[K, V any] struct {
	chunks []*[chunkLen]node[K, V]
	used   index // slots handed out so far, counting slot 0
	free   index // head of the free list, 0 when empty
}

func (u *arena[K, V]) at(i index) *node[K, V] {
	return &u.chunks[i>>logChunkLen][i&(chunkLen-1)]
}

// live reports whether i currently holds a node of the tree.
func (u *arena[K, V]) live(i index) bool {
	return i != 0 && i < u.used && u.at(i).p != i
}

// alloc a detached leaf holding k and v. Nothing is modified if it panics.
// Time: amortized O(1)
func (u *arena[K, V]) alloc(k K, v V) index {
	i := u.popFree()
	if i == 0 {
		if u.used == 0 {
			u.used = 1
		}
		if u.used == math.MaxUint32 {
			panic(ErrArenaExhausted)
		}
		if int(u.used>>logChunkLen) == len(u.chunks) {
			u.chunks = append(u.chunks, new([chunkLen]node[K, V]))
		}
		i = u.used
		u.used++
	}
	*u.at(i) = node[K, V]{k: k, v: v}
	return i
}

// release index i once. The node's key and value are dropped.
func (u *arena[K, V]) release(i index) {
	*u.at(i) = node[K, V]{l: u.free, p: i}
	u.free = i
}

// popFree index once. Returns 0 when there's no free index.
func (u *arena[K, V]) popFree() index {
	b := u.free
	if b != 0 {
		u.free = u.at(b).l
	}
	return b
}
