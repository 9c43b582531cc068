// Package avlset provides OrderedSet, an ordered set of unique values kept
// in a height-balanced (AVL) binary search tree.
//
// Every node satisfies |height(left) - height(right)| <= 1, with a leaf
// at height 1 and an absent child at height 0, so lookups, insertions
// and erasures are O(log n). Balance is restored on the way back up from
// every structural change using single and double rotations.
package avlset

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
}

// OrderedSet is a set of unique values iterated in ascending order.
type OrderedSet[T any] struct {
	root *node[T]
	size int
	cmp  func(a, b T) int
}

// New returns an empty set ordered by the natural order of T.
func New[T constraints.Ordered]() *OrderedSet[T] {
	return NewFunc[T](compare[T])
}

// NewFunc returns an empty set ordered by cmp.
func NewFunc[T any](cmp func(a, b T) int) *OrderedSet[T] {
	return &OrderedSet[T]{cmp: cmp}
}

// From returns a set holding vals.
func From[T constraints.Ordered](vals ...T) *OrderedSet[T] {
	s := New[T]()
	for _, v := range vals {
		s.Insert(v)
	}
	return s
}

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func fix[T any](n *node[T]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateRight promotes y.left to the local root.
//
//	    y            x
//	   / \          / \
//	  x   c  ==>   a   y
//	 / \              / \
//	a   t            t   c
func rotateRight[T any](y *node[T]) *node[T] {
	x := y.left
	t := x.right
	x.right = y
	y.left = t
	fix(y)
	fix(x)
	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[T any](x *node[T]) *node[T] {
	y := x.right
	t := y.left
	y.left = x
	x.right = t
	fix(x)
	fix(y)
	return y
}

// Len returns the number of values.
func (s *OrderedSet[T]) Len() int { return s.size }

// IsEmpty reports whether the set has no values.
func (s *OrderedSet[T]) IsEmpty() bool { return s.size == 0 }

// Height returns the height of the tree, 0 when empty.
func (s *OrderedSet[T]) Height() int { return height(s.root) }

// Insert adds v and reports whether it was not already present.
func (s *OrderedSet[T]) Insert(v T) bool {
	var inserted bool
	s.root = s.insert(s.root, v, &inserted)
	if inserted {
		s.size++
	}
	return inserted
}

func (s *OrderedSet[T]) insert(n *node[T], v T, inserted *bool) *node[T] {
	if n == nil {
		*inserted = true
		return &node[T]{value: v, height: 1}
	}

	switch c := s.cmp(v, n.value); {
	case c < 0:
		n.left = s.insert(n.left, v, inserted)
	case c > 0:
		n.right = s.insert(n.right, v, inserted)
	default:
		return n
	}

	fix(n)
	b := balance(n)

	switch {
	case b > 1 && s.cmp(v, n.left.value) < 0: // left-left
		return rotateRight(n)
	case b > 1 && s.cmp(v, n.left.value) > 0: // left-right
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case b < -1 && s.cmp(v, n.right.value) > 0: // right-right
		return rotateLeft(n)
	case b < -1 && s.cmp(v, n.right.value) < 0: // right-left
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

// Erase removes v and reports whether it was present.
func (s *OrderedSet[T]) Erase(v T) bool {
	var erased bool
	s.root = s.erase(s.root, v, &erased)
	if erased {
		s.size--
	}
	return erased
}

func (s *OrderedSet[T]) erase(n *node[T], v T, erased *bool) *node[T] {
	if n == nil {
		return nil
	}

	switch c := s.cmp(v, n.value); {
	case c < 0:
		n.left = s.erase(n.left, v, erased)
	case c > 0:
		n.right = s.erase(n.right, v, erased)
	default:
		*erased = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.value = succ.value
		n.right = s.erase(n.right, succ.value, erased)
	}

	fix(n)
	b := balance(n)

	// The case is chosen from the child's own balance, not from v.
	switch {
	case b > 1 && balance(n.left) >= 0:
		return rotateRight(n)
	case b > 1:
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case b < -1 && balance(n.right) <= 0:
		return rotateLeft(n)
	case b < -1:
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

// Contains reports whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	n := s.root
	for n != nil {
		switch c := s.cmp(v, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value.
func (s *OrderedSet[T]) Min() (T, bool) {
	if s.root == nil {
		var zero T
		return zero, false
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value.
func (s *OrderedSet[T]) Max() (T, bool) {
	if s.root == nil {
		var zero T
		return zero, false
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// All yields the values in ascending order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inorder(s.root, yield)
	}
}

func inorder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.value) && inorder(n.right, yield)
}

// Clear removes every value.
func (s *OrderedSet[T]) Clear() {
	s.root = nil
	s.size = 0
}

// Valid checks ordering, stored heights and the balance condition at
// every node.
func (s *OrderedSet[T]) Valid() error {
	count, _, err := s.validate(s.root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.size {
		return fmt.Errorf("size %d does not match node count %d", s.size, count)
	}
	return nil
}

func (s *OrderedSet[T]) validate(n *node[T], lo, hi *T) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && s.cmp(n.value, *lo) <= 0 {
		return 0, 0, fmt.Errorf("value %v not greater than ancestor %v", n.value, *lo)
	}
	if hi != nil && s.cmp(n.value, *hi) >= 0 {
		return 0, 0, fmt.Errorf("value %v not less than ancestor %v", n.value, *hi)
	}
	lc, lh, err := s.validate(n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := s.validate(n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("node %v stores height %d, computed %d", n.value, n.height, h)
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, 0, fmt.Errorf("node %v unbalanced: balance factor %d", n.value, d)
	}
	return lc + rc + 1, h, nil
}

// Shape is a snapshot of one tree node, used for rendering.
type Shape[T any] struct {
	Value  T
	Height int
	Left   *Shape[T]
	Right  *Shape[T]
}

// Shape returns a copy of the tree structure, or nil for an empty set.
func (s *OrderedSet[T]) Shape() *Shape[T] {
	return shape(s.root)
}

func shape[T any](n *node[T]) *Shape[T] {
	if n == nil {
		return nil
	}
	return &Shape[T]{Value: n.value, Height: n.height, Left: shape(n.left), Right: shape(n.right)}
}
