// Package treemap provides OrderedMap, a key-ordered associative
// container backed by an unbalanced binary search tree.
//
// Keys in the left subtree of a node are strictly less than its key and
// keys in the right subtree strictly greater. No rebalancing is done, so
// adversarial insertion order degrades lookups to O(n). Use avlset when a
// logarithmic bound is required.
package treemap

import (
	"iter"

	"golang.org/x/exp/constraints"

	cerrors "github.com/conneroisu/containers/internal/errors"
)

const name = "treemap"

// ErrNotFound is returned by MustGet for absent keys.
var ErrNotFound = cerrors.ErrNotFound

type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// OrderedMap maps keys to values in ascending key order.
type OrderedMap[K, V any] struct {
	root *node[K, V]
	size int
	cmp  func(a, b K) int
}

// New returns an empty map ordered by the natural order of K.
func New[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return NewFunc[K, V](compare[K])
}

// NewFunc returns an empty map ordered by cmp, which must return a
// negative number when a < b, zero when equal and positive otherwise.
func NewFunc[K, V any](cmp func(a, b K) int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{cmp: cmp}
}

func compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Len returns the number of keys.
func (m *OrderedMap[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map has no keys.
func (m *OrderedMap[K, V]) IsEmpty() bool { return m.size == 0 }

// Insert stores value under key, overwriting any previous value.
func (m *OrderedMap[K, V]) Insert(key K, value V) {
	m.root = m.insert(m.root, key, value)
}

func (m *OrderedMap[K, V]) insert(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		m.size++
		return &node[K, V]{key: key, value: value}
	}
	switch c := m.cmp(key, n.key); {
	case c < 0:
		n.left = m.insert(n.left, key, value)
	case c > 0:
		n.right = m.insert(n.right, key, value)
	default:
		n.value = value
	}
	return n
}

func (m *OrderedMap[K, V]) find(key K) *node[K, V] {
	n := m.root
	for n != nil {
		switch c := m.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Find returns a pointer to the value stored under key. The pointer
// stays valid until key is erased.
func (m *OrderedMap[K, V]) Find(key K) (*V, bool) {
	if n := m.find(key); n != nil {
		return &n.value, true
	}
	return nil, false
}

// Get returns a copy of the value stored under key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if n := m.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// MustGet is Get reporting absence as ErrNotFound.
func (m *OrderedMap[K, V]) MustGet(key K) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	var zero V
	return zero, cerrors.NotFound(name, "MustGet")
}

// Contains reports whether key is present.
func (m *OrderedMap[K, V]) Contains(key K) bool {
	return m.find(key) != nil
}

// Erase removes key and reports whether it was present.
func (m *OrderedMap[K, V]) Erase(key K) bool {
	var removed bool
	m.root = m.erase(m.root, key, &removed)
	if removed {
		m.size--
	}
	return removed
}

func (m *OrderedMap[K, V]) erase(n *node[K, V], key K, removed *bool) *node[K, V] {
	if n == nil {
		return nil
	}
	switch c := m.cmp(key, n.key); {
	case c < 0:
		n.left = m.erase(n.left, key, removed)
	case c > 0:
		n.right = m.erase(n.right, key, removed)
	default:
		*removed = true
		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		}
		// Two children: take over the in-order successor, then remove it
		// from the right subtree.
		succ := minNode(n.right)
		n.key, n.value = succ.key, succ.value
		var ignored bool
		n.right = m.erase(n.right, succ.key, &ignored)
	}
	return n
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Min returns the smallest key and its value.
func (m *OrderedMap[K, V]) Min() (K, V, bool) {
	if m.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := minNode(m.root)
	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (m *OrderedMap[K, V]) Max() (K, V, bool) {
	if m.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := m.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (m *OrderedMap[K, V]) Height() int {
	return height(m.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// All yields key/value pairs in ascending key order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(m.root, yield)
	}
}

// Keys yields the keys in ascending order.
func (m *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		inorder(m.root, func(k K, _ V) bool { return yield(k) })
	}
}

func inorder[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.key, n.value) && inorder(n.right, yield)
}

// Clear removes every key.
func (m *OrderedMap[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

// Shape is a snapshot of one tree node, used for rendering.
type Shape[K, V any] struct {
	Key   K
	Value V
	Left  *Shape[K, V]
	Right *Shape[K, V]
}

// Shape returns a copy of the tree structure, or nil for an empty map.
func (m *OrderedMap[K, V]) Shape() *Shape[K, V] {
	return shape(m.root)
}

func shape[K, V any](n *node[K, V]) *Shape[K, V] {
	if n == nil {
		return nil
	}
	return &Shape[K, V]{Key: n.key, Value: n.value, Left: shape(n.left), Right: shape(n.right)}
}
