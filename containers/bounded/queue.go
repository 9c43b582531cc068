package bounded

import (
	cerrors "github.com/conneroisu/containers/internal/errors"
)

// BoundedQueue is a FIFO queue over a fixed buffer with separate front
// and rear cursors and no wraparound. Dequeued slots are not reused: once
// the rear cursor reaches the end of the buffer every Enqueue is
// rejected with ErrFull, even when the queue is logically empty, until
// Reset is called. CircularQueue lifts this restriction.
type BoundedQueue[T any] struct {
	data  []T
	front int
	rear  int // index of the last occupied slot, -1 before the first enqueue
}

// NewQueue returns an empty linear queue over a buffer of capacity slots.
func NewQueue[T any](capacity int) *BoundedQueue[T] {
	return &BoundedQueue[T]{data: make([]T, max(capacity, 0)), rear: -1}
}

// Enqueue appends v at the rear.
func (q *BoundedQueue[T]) Enqueue(v T) error {
	if q.rear+1 >= len(q.data) {
		return cerrors.Full("queue", "Enqueue")
	}
	q.rear++
	q.data[q.rear] = v
	return nil
}

// Dequeue removes and returns the front element.
func (q *BoundedQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, cerrors.Empty("queue", "Dequeue")
	}
	v := q.data[q.front]
	q.data[q.front] = zero
	q.front++
	return v, nil
}

// Peek returns the front element without removing it.
func (q *BoundedQueue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, cerrors.Empty("queue", "Peek")
	}
	return q.data[q.front], nil
}

// Len returns the number of queued elements.
func (q *BoundedQueue[T]) Len() int { return q.rear - q.front + 1 }

// Cap returns the buffer size.
func (q *BoundedQueue[T]) Cap() int { return len(q.data) }

// IsEmpty reports whether no element is queued.
func (q *BoundedQueue[T]) IsEmpty() bool { return q.front > q.rear }

// IsFull reports whether Enqueue would be rejected. For this queue that
// includes an exhausted buffer tail with free slots at the front.
func (q *BoundedQueue[T]) IsFull() bool { return q.rear+1 >= len(q.data) }

// Exhausted reports whether the buffer tail is used up while slots freed
// by Dequeue remain unreachable.
func (q *BoundedQueue[T]) Exhausted() bool { return q.IsFull() && q.Len() < len(q.data) }

// Reset empties the queue and rewinds both cursors.
func (q *BoundedQueue[T]) Reset() {
	clear(q.data)
	q.front = 0
	q.rear = -1
}

// CircularQueue is a FIFO ring buffer of fixed capacity. Slots released
// by Dequeue are reused by later Enqueue calls.
type CircularQueue[T any] struct {
	data  []T
	head  int
	count int
}

// NewCircularQueue returns an empty ring buffer of capacity slots.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{data: make([]T, max(capacity, 0))}
}

// Enqueue appends v at the rear.
func (q *CircularQueue[T]) Enqueue(v T) error {
	if q.count == len(q.data) {
		return cerrors.Full("circular_queue", "Enqueue")
	}
	q.data[(q.head+q.count)%len(q.data)] = v
	q.count++
	return nil
}

// Dequeue removes and returns the front element.
func (q *CircularQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, cerrors.Empty("circular_queue", "Dequeue")
	}
	v := q.data[q.head]
	q.data[q.head] = zero
	q.head = (q.head + 1) % len(q.data)
	q.count--
	return v, nil
}

// Peek returns the front element without removing it.
func (q *CircularQueue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, cerrors.Empty("circular_queue", "Peek")
	}
	return q.data[q.head], nil
}

func (q *CircularQueue[T]) Len() int      { return q.count }
func (q *CircularQueue[T]) Cap() int      { return len(q.data) }
func (q *CircularQueue[T]) IsEmpty() bool { return q.count == 0 }
func (q *CircularQueue[T]) IsFull() bool  { return q.count == len(q.data) }
