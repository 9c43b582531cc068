// Package vector provides DynamicArray, a contiguous sequence with
// amortized O(1) appends.
//
// The buffer always has length equal to the capacity; size counts the
// occupied prefix. When an append finds size == capacity the buffer is
// reallocated at twice the capacity (minimum 1) and the elements copied
// across.
package vector

import (
	"fmt"
	"iter"
	"strings"

	cerrors "github.com/conneroisu/containers/internal/errors"
)

const name = "vector"

// Errors returned by DynamicArray operations.
var (
	ErrUnderflow  = cerrors.ErrUnderflow
	ErrOutOfRange = cerrors.ErrOutOfRange
)

// DynamicArray is a growable contiguous sequence. The zero value is an
// empty array with capacity 0; the first append allocates.
type DynamicArray[T any] struct {
	data []T
	size int
}

// New returns an empty array with capacity 1.
func New[T any]() *DynamicArray[T] {
	return NewWithCapacity[T](1)
}

// NewWithCapacity returns an empty array with the given capacity.
func NewWithCapacity[T any](capacity int) *DynamicArray[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &DynamicArray[T]{data: make([]T, capacity)}
}

// From returns an array holding vals in order.
func From[T any](vals ...T) *DynamicArray[T] {
	a := NewWithCapacity[T](len(vals))
	for _, v := range vals {
		a.PushBack(v)
	}
	return a
}

// Len returns the number of stored elements.
func (a *DynamicArray[T]) Len() int { return a.size }

// Cap returns the length of the backing buffer.
func (a *DynamicArray[T]) Cap() int { return len(a.data) }

// IsEmpty reports whether the array holds no elements.
func (a *DynamicArray[T]) IsEmpty() bool { return a.size == 0 }

func (a *DynamicArray[T]) grow() {
	newCap := 2 * len(a.data)
	if newCap == 0 {
		newCap = 1
	}
	buf := make([]T, newCap)
	copy(buf, a.data[:a.size])
	a.data = buf
}

// PushBack appends v.
func (a *DynamicArray[T]) PushBack(v T) {
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = v
	a.size++
}

// PopBack removes and returns the last element.
func (a *DynamicArray[T]) PopBack() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, cerrors.Underflow(name, "PopBack")
	}
	a.size--
	v := a.data[a.size]
	a.data[a.size] = zero
	return v, nil
}

// Back returns the last element without removing it.
func (a *DynamicArray[T]) Back() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, cerrors.Underflow(name, "Back")
	}
	return a.data[a.size-1], nil
}

// Get returns the element at index.
func (a *DynamicArray[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, cerrors.OutOfRange(name, "Get", index, a.size)
	}
	return a.data[index], nil
}

// Set replaces the element at index.
func (a *DynamicArray[T]) Set(index int, v T) error {
	if index < 0 || index >= a.size {
		return cerrors.OutOfRange(name, "Set", index, a.size)
	}
	a.data[index] = v
	return nil
}

// Insert places v at index, shifting later elements one slot right.
// index may equal Len, which appends.
func (a *DynamicArray[T]) Insert(index int, v T) error {
	if index < 0 || index > a.size {
		return cerrors.OutOfRange(name, "Insert", index, a.size+1)
	}
	if a.size == len(a.data) {
		a.grow()
	}
	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = v
	a.size++
	return nil
}

// Clear removes all elements but keeps the buffer.
func (a *DynamicArray[T]) Clear() {
	clear(a.data[:a.size])
	a.size = 0
}

// All yields index/value pairs in order.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the stored elements.
func (a *DynamicArray[T]) Slice() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])
	return out
}

// String renders the elements tab separated.
func (a *DynamicArray[T]) String() string {
	var sb strings.Builder
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteByte('\t')
		}
		fmt.Fprint(&sb, a.data[i])
	}
	return sb.String()
}
