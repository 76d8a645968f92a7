package Queues

import (
	"fmt"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

// ListLike containers push at the back and pop at the front in O(1), as the lists do.
type ListLike[T any] interface {
	Size() int
	Empty() bool
	Clear()
	Items() []T
	PushBack(T)
	PopFront() error
	Front() (T, error)
	Back() (T, error)
}

type listQ[T any] struct {
	c ListLike[T]
}

// New Queue over c, which it owns from now on. Containers that aren't ListLike, such as
// vectors, get ErrUnsupported; see NewOverVector.
func New[T any](c any) (Queue[T], error) {
	l, ok := c.(ListLike[T])
	if !ok {
		return nil, fmt.Errorf("%w: %T can't push back and pop front", Go_Containers.ErrUnsupported, c)
	}
	return &listQ[T]{l}, nil
}

func (this *listQ[T]) Push(item T) error {
	this.c.PushBack(item)
	return nil
}

func (this *listQ[T]) Pop() (T, error) {
	v, err := this.Front()
	if err != nil {
		return v, err
	}
	return v, this.c.PopFront()
}

func (this *listQ[T]) Front() (T, error) {
	if this.c.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return this.c.Front()
}

func (this *listQ[T]) Back() (T, error) {
	if this.c.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return this.c.Back()
}

func (this *listQ[T]) Size() int {
	return this.c.Size()
}

func (this *listQ[T]) Empty() bool {
	return this.c.Empty()
}

func (this *listQ[T]) Clear() {
	this.c.Clear()
}

func (this *listQ[T]) Items() []T {
	return this.c.Items()
}

func (this *listQ[T]) Values() []interface{} {
	return values(this.Items())
}

func (this *listQ[T]) String() string {
	return toString(this.Items())
}
