// Package deque provides BlockDeque, a double-ended sequence backed by an
// indirection table of fixed-size blocks.
//
// The table holds optional block handles between frontIndex and
// backIndex. Each push allocates a block at the new boundary if none is
// there and stores the element in its first slot; each pop releases the
// boundary block. When either boundary reaches an edge of the table the
// table is doubled and the existing handles are re-centred, so pushes at
// both ends are amortized O(1). Regrowth copies handles, never elements.
package deque

import (
	"iter"

	cerrors "github.com/conneroisu/containers/internal/errors"
)

const name = "deque"

// BlockSize is the number of slots allocated per block. Only slot 0 of
// each block carries an element.
const BlockSize = 4

const initialCapacity = 2

// Errors returned by BlockDeque operations.
var (
	ErrUnderflow  = cerrors.ErrUnderflow
	ErrOutOfRange = cerrors.ErrOutOfRange
)

type block[T any] [BlockSize]T

// Option configures a BlockDeque.
type Option func(*options)

type options struct {
	onGrow func(oldCap, newCap int)
}

// WithGrowHook registers fn to be called after every regrowth of the
// indirection table.
func WithGrowHook(fn func(oldCap, newCap int)) Option {
	return func(o *options) {
		o.onGrow = fn
	}
}

// BlockDeque is a double-ended queue. Use New to construct one.
type BlockDeque[T any] struct {
	blocks     []*block[T]
	frontIndex int
	backIndex  int
	size       int
	opts       options
}

// New returns an empty deque with a two-slot indirection table.
func New[T any](opts ...Option) *BlockDeque[T] {
	d := &BlockDeque[T]{
		blocks:     make([]*block[T], initialCapacity),
		frontIndex: 1,
		backIndex:  0,
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Len returns the number of stored elements.
func (d *BlockDeque[T]) Len() int { return d.size }

// IsEmpty reports whether the deque holds no elements.
func (d *BlockDeque[T]) IsEmpty() bool { return d.size == 0 }

// Cap returns the number of block slots in the indirection table.
func (d *BlockDeque[T]) Cap() int { return len(d.blocks) }

func (d *BlockDeque[T]) allocateBlocks(newCap int) {
	oldCap := len(d.blocks)
	newBlocks := make([]*block[T], newCap)

	offset := (newCap - oldCap) / 2
	copy(newBlocks[offset:], d.blocks)

	d.blocks = newBlocks
	d.frontIndex += offset
	d.backIndex += offset

	if d.opts.onGrow != nil {
		d.opts.onGrow(oldCap, newCap)
	}
}

func (d *BlockDeque[T]) resizeIfNeeded() {
	if d.frontIndex == 0 || d.backIndex == len(d.blocks)-1 {
		d.allocateBlocks(len(d.blocks) * 2)
	}
}

// PushFront inserts v before the first element.
func (d *BlockDeque[T]) PushFront(v T) {
	d.resizeIfNeeded()
	d.frontIndex--
	if d.blocks[d.frontIndex] == nil {
		d.blocks[d.frontIndex] = new(block[T])
	}
	d.blocks[d.frontIndex][0] = v
	d.size++
}

// PushBack inserts v after the last element.
func (d *BlockDeque[T]) PushBack(v T) {
	d.resizeIfNeeded()
	d.backIndex++
	if d.blocks[d.backIndex] == nil {
		d.blocks[d.backIndex] = new(block[T])
	}
	d.blocks[d.backIndex][0] = v
	d.size++
}

// PopFront removes and returns the first element.
func (d *BlockDeque[T]) PopFront() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, cerrors.Underflow(name, "PopFront")
	}
	v := d.blocks[d.frontIndex][0]
	d.blocks[d.frontIndex] = nil
	d.frontIndex++
	d.size--
	return v, nil
}

// PopBack removes and returns the last element.
func (d *BlockDeque[T]) PopBack() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, cerrors.Underflow(name, "PopBack")
	}
	v := d.blocks[d.backIndex][0]
	d.blocks[d.backIndex] = nil
	d.backIndex--
	d.size--
	return v, nil
}

// Front returns the first element.
func (d *BlockDeque[T]) Front() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, cerrors.Underflow(name, "Front")
	}
	return d.blocks[d.frontIndex][0], nil
}

// Back returns the last element.
func (d *BlockDeque[T]) Back() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, cerrors.Underflow(name, "Back")
	}
	return d.blocks[d.backIndex][0], nil
}

// At returns the i-th element counted from the front.
func (d *BlockDeque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.size {
		var zero T
		return zero, cerrors.OutOfRange(name, "At", i, d.size)
	}
	return d.blocks[d.frontIndex+i][0], nil
}

// All yields the elements from front to back.
func (d *BlockDeque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.frontIndex; i <= d.backIndex; i++ {
			if !yield(d.blocks[i][0]) {
				return
			}
		}
	}
}
