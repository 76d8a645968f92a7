package Trees

import (
	"iter"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

// SortedMap represents an ordered key-value container built from linked nodes.
// Keys are unique and kept in the order given by the comparison function the map was
// constructed with. Positions are handed out as iterators; an iterator stays valid until
// the entry it points at is erased or the whole map is cleared, swapped or moved from.
// Receivers returning an error as the second value leave the first value undefined when
// the error isn't nil. Methods implemented recursively are noted, otherwise they are
// iterative.
type SortedMap[K, V any] interface {
	Go_Containers.Container
	//Insert k with v. Returns the position of k and whether it was inserted. An existing
	//entry is never overwritten.
	Insert(k K, v V) (Iterator[K, V], bool)
	//Erase the entry with key k. Returns the number of entries erased, 0 or 1.
	Erase(k K) int
	//EraseAt erases the entry at pos and returns the position of its in-order successor.
	//Erasing at End() does nothing and returns End().
	EraseAt(pos Cursor[K, V]) Iterator[K, V]
	//Find the entry with key k. End() when there is none.
	Find(k K) Iterator[K, V]
	//Contains reports whether k has an entry. Equivalent to !Find(k).IsEnd().
	Contains(k K) bool
	//At returns the value of k, or ErrKeyNotFound.
	At(k K) (V, error)
	//Entry returns a pointer to the value of k, inserting the zero value first if needed.
	Entry(k K) *V
	//Begin is the position of the least key, End() if the map is empty.
	Begin() Iterator[K, V]
	//End is the position past the greatest key.
	End() Iterator[K, V]
	//All entries in ascending key order. The map must not be modified during the iteration.
	All() iter.Seq2[K, V]
	//Backward yields all entries in descending key order.
	Backward() iter.Seq2[K, V]
	//Height of the tree, computed recursively. -1 for an empty tree.
	Height() int
	//Corrupt returns whether the tree has corrupt structures: keys out of order, wrong
	//heights or parent links, a miscounted size, or a node out of balance.
	Corrupt() bool
}

var _ SortedMap[int, int] = (*Tree[int, int])(nil)
