// Package bounded provides fixed-capacity, array-backed LIFO and FIFO
// adapters. Unlike vector.DynamicArray they never grow: an insertion at
// capacity is rejected with ErrFull and a removal from an empty adapter
// reports ErrEmpty.
package bounded

import (
	cerrors "github.com/conneroisu/containers/internal/errors"
)

// Errors returned by the bounded adapters.
var (
	ErrFull  = cerrors.ErrFull
	ErrEmpty = cerrors.ErrEmpty
)

// Queue is the FIFO behaviour shared by BoundedQueue and CircularQueue.
type Queue[T any] interface {
	Enqueue(v T) error
	Dequeue() (T, error)
	Peek() (T, error)
	Len() int
	Cap() int
	IsEmpty() bool
	IsFull() bool
}

var (
	_ Queue[int] = (*BoundedQueue[int])(nil)
	_ Queue[int] = (*CircularQueue[int])(nil)
)

// BoundedStack is a LIFO stack over a buffer sized at construction.
type BoundedStack[T any] struct {
	data []T
	top  int // number of occupied slots
}

// NewStack returns an empty stack holding at most capacity elements.
func NewStack[T any](capacity int) *BoundedStack[T] {
	return &BoundedStack[T]{data: make([]T, max(capacity, 0))}
}

// Push places v on top of the stack.
func (s *BoundedStack[T]) Push(v T) error {
	if s.top == len(s.data) {
		return cerrors.Full("stack", "Push")
	}
	s.data[s.top] = v
	s.top++
	return nil
}

// Pop removes and returns the top element.
func (s *BoundedStack[T]) Pop() (T, error) {
	var zero T
	if s.top == 0 {
		return zero, cerrors.Empty("stack", "Pop")
	}
	s.top--
	v := s.data[s.top]
	s.data[s.top] = zero
	return v, nil
}

// Peek returns the top element without removing it.
func (s *BoundedStack[T]) Peek() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, cerrors.Empty("stack", "Peek")
	}
	return s.data[s.top-1], nil
}

func (s *BoundedStack[T]) Len() int      { return s.top }
func (s *BoundedStack[T]) Cap() int      { return len(s.data) }
func (s *BoundedStack[T]) IsEmpty() bool { return s.top == 0 }
func (s *BoundedStack[T]) IsFull() bool  { return s.top == len(s.data) }
