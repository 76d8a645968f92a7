package Queues

import (
	"errors"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Vectors"
)

// vecQ keeps its elements in a ring over all Size() slots of the vector, which it keeps
// as large as the vector's capacity. A full ring is laid out again from slot 0 and the
// vector grows by its own policy.
type vecQ[T any] struct {
	v        *Vectors.Vector[T]
	sz, head int
}

// NewOverVector creates a Queue over v, which it owns from now on. The elements already in
// v are queued front to back. A Fixed vector makes a bounded queue whose Push returns
// *Go_Containers.FullError when it's full.
func NewOverVector[T any](v *Vectors.Vector[T]) Queue[T] {
	this := &vecQ[T]{v: v, sz: v.Size()}
	this.fill()
	return this
}

// fill the vector with zero values up to its capacity.
func (this *vecQ[T]) fill() {
	for this.v.Size() < this.v.Capacity() {
		this.v.PushBack(*new(T))
	}
}

func (this *vecQ[T]) slot(i int) int {
	return (this.head + i) % this.v.Size()
}

// relocate lays the ring out from slot 0 and pushes item after it.
// Time: O(N)
func (this *vecQ[T]) relocate(item T) error {
	if this.v.Policy() == Vectors.Fixed {
		return &Go_Containers.FullError{Capacity: this.v.Capacity()}
	}
	items := this.Items()
	for i, x := range items {
		this.v.Set(i, x)
	}
	this.head = 0
	if err := this.v.PushBack(item); err != nil {
		if errors.Is(err, Go_Containers.ErrOverflow) {
			return &Go_Containers.FullError{Capacity: this.v.Capacity()}
		}
		return err
	}
	this.sz++
	this.fill()
	return nil
}

func (this *vecQ[T]) Push(item T) error {
	if this.sz == this.v.Size() {
		return this.relocate(item)
	}
	this.v.Set(this.slot(this.sz), item)
	this.sz++
	return nil
}

func (this *vecQ[T]) Pop() (T, error) {
	if this.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	t := this.v.Get(this.head)
	this.v.Set(this.head, *new(T))
	this.head = this.slot(1)
	this.sz--
	return t, nil
}

func (this *vecQ[T]) Front() (T, error) {
	if this.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return this.v.Get(this.head), nil
}

func (this *vecQ[T]) Back() (T, error) {
	if this.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return this.v.Get(this.slot(this.sz - 1)), nil
}

func (this *vecQ[T]) Size() int {
	return this.sz
}

func (this *vecQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *vecQ[T]) Clear() {
	this.v.Clear()
	this.sz, this.head = 0, 0
	this.fill()
}

func (this *vecQ[T]) Items() []T {
	items := make([]T, this.sz)
	for i := range items {
		items[i] = this.v.Get(this.slot(i))
	}
	return items
}

func (this *vecQ[T]) Values() []interface{} {
	return values(this.Items())
}

func (this *vecQ[T]) String() string {
	return toString(this.Items())
}
