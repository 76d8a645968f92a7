package Queues

import Go_Containers "github.com/g-m-twostay/go-containers"

type circArrQ[T any] struct {
	sz, head, tail int
	content        []T
}

// MakeArrayQueue creates a queue holding at most capacity elements. Push on a full queue
// returns *Go_Containers.FullError.
func MakeArrayQueue[T any](capacity int) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, capacity)}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Size() int {
	return this.sz
}

func (this *circArrQ[T]) Capacity() int {
	return len(this.content)
}

func (this *circArrQ[T]) Push(item T) error {
	if this.sz == len(this.content) {
		return &Go_Containers.FullError{Capacity: len(this.content)}
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % len(this.content)
	this.sz++
	return nil
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % len(this.content)
		this.sz--
		return t, nil
	}
}

func (this *circArrQ[T]) Front() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return this.content[this.head], nil
}

func (this *circArrQ[T]) Back() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return this.content[(this.tail+len(this.content)-1)%len(this.content)], nil
}

func (this *circArrQ[T]) Items() []T {
	items := make([]T, this.sz)
	for i := range items {
		items[i] = this.content[(this.head+i)%len(this.content)]
	}
	return items
}

func (this *circArrQ[T]) Values() []interface{} {
	return values(this.Items())
}

func (this *circArrQ[T]) String() string {
	return toString(this.Items())
}
