// Package collection provides utility data structures.
package collection

// Queue is a FIFO queue backed by a slice.
type Queue[T any] struct {
	data []T
	head int
}

func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, item := range items {
		q.Push(item)
	}

	return q
}

func (q *Queue[T]) Push(v T) {
	q.data = append(q.data, v)
}

// Pop removes and returns the front element. The zero value is returned
// when the queue is empty.
func (q *Queue[T]) Pop() T {
	var zero T
	if q.head == len(q.data) {
		return zero
	}

	v := q.data[q.head]
	q.data[q.head] = zero
	q.head++

	// reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.data)/2 {
		n := copy(q.data, q.data[q.head:])
		clear(q.data[n:])
		q.data = q.data[:n]
		q.head = 0
	}

	return v
}

func (q *Queue[T]) Len() int {
	return len(q.data) - q.head
}

// Drain pops elements until the queue is empty or yield returns false.
// Elements pushed during iteration are visited as well.
func (q *Queue[T]) Drain(yield func(T) bool) {
	for q.Len() > 0 {
		if !yield(q.Pop()) {
			return
		}
	}
}
