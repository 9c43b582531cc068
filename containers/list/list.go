// Package list provides DoublyLinkedList, a node based double-ended
// sequence with O(1) insertion and removal at both ends.
package list

import (
	"fmt"
	"iter"
	"strings"

	cerrors "github.com/conneroisu/containers/internal/errors"
)

const name = "list"

// ErrUnderflow is returned when popping or peeking an empty list.
var ErrUnderflow = cerrors.ErrUnderflow

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// DoublyLinkedList is a doubly linked list. The zero value is an empty
// list ready to use.
//
// head is nil iff tail is nil iff size is 0.
type DoublyLinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// Len returns the number of elements.
func (l *DoublyLinkedList[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *DoublyLinkedList[T]) IsEmpty() bool { return l.size == 0 }

// PushBack appends v at the tail.
func (l *DoublyLinkedList[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	}
	l.size++
}

// PushFront prepends v at the head.
func (l *DoublyLinkedList[T]) PushFront(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		l.head.prev = n
		n.next = l.head
		l.head = n
	}
	l.size++
}

// PopBack detaches and returns the tail element.
func (l *DoublyLinkedList[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, cerrors.Underflow(name, "PopBack")
	}
	n := l.tail
	if n.prev != nil {
		l.tail = n.prev
		l.tail.next = nil
	} else {
		l.head, l.tail = nil, nil
	}
	n.prev = nil
	l.size--
	return n.value, nil
}

// PopFront detaches and returns the head element.
func (l *DoublyLinkedList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, cerrors.Underflow(name, "PopFront")
	}
	n := l.head
	if n.next != nil {
		l.head = n.next
		l.head.prev = nil
	} else {
		l.head, l.tail = nil, nil
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// Front returns the head element.
func (l *DoublyLinkedList[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, cerrors.Underflow(name, "Front")
	}
	return l.head.value, nil
}

// Back returns the tail element.
func (l *DoublyLinkedList[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, cerrors.Underflow(name, "Back")
	}
	return l.tail.value, nil
}

// Clear pops every element.
func (l *DoublyLinkedList[T]) Clear() {
	for l.head != nil {
		_, _ = l.PopFront()
	}
}

// All yields the elements from head to tail. Each call starts a fresh
// traversal.
func (l *DoublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements from tail to head.
func (l *DoublyLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String renders the elements space separated, head first.
func (l *DoublyLinkedList[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	return sb.String()
}
