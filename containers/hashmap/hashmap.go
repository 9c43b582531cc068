// Package hashmap provides HashMap, an unordered associative container
// using separate chaining.
//
// Each key lives in exactly one chain, chosen by hash(key) mod
// bucketCount. After every insertion the load factor size/bucketCount is
// compared against the configured maximum and the bucket array is
// doubled and redistributed while it is exceeded. Erasure never shrinks
// the bucket array.
package hashmap

import (
	"hash/maphash"
	"iter"

	cerrors "github.com/conneroisu/containers/internal/errors"
)

const name = "hashmap"

const (
	DefaultBuckets       = 8
	DefaultMaxLoadFactor = 0.75
)

// ErrNotFound is returned by MustGet for absent keys.
var ErrNotFound = cerrors.ErrNotFound

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Option configures a HashMap.
type Option func(*options)

type options struct {
	buckets       int
	maxLoadFactor float64
	onRehash      func(oldBuckets, newBuckets int)
}

// WithBuckets sets the initial bucket count. Values below 1 are ignored.
func WithBuckets(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.buckets = n
		}
	}
}

// WithMaxLoadFactor sets the load factor above which the map rehashes.
// Non-positive values are ignored.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.maxLoadFactor = f
		}
	}
}

// WithRehashHook registers fn to be called after every rehash.
func WithRehashHook(fn func(oldBuckets, newBuckets int)) Option {
	return func(o *options) {
		o.onRehash = fn
	}
}

// HashMap maps comparable keys to values.
type HashMap[K comparable, V any] struct {
	buckets  [][]entry[K, V]
	size     int
	hash     func(K) uint64
	maxLoad  float64
	onRehash func(oldBuckets, newBuckets int)
}

// New returns an empty map hashing keys with hash/maphash under a seed
// private to the map.
func New[K comparable, V any](opts ...Option) *HashMap[K, V] {
	seed := maphash.MakeSeed()
	return NewWithHasher[K, V](func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}, opts...)
}

// NewWithHasher returns an empty map using hash to place keys. Keys that
// compare equal must hash equal.
func NewWithHasher[K comparable, V any](hash func(K) uint64, opts ...Option) *HashMap[K, V] {
	o := options{buckets: DefaultBuckets, maxLoadFactor: DefaultMaxLoadFactor}
	for _, opt := range opts {
		opt(&o)
	}
	return &HashMap[K, V]{
		buckets:  make([][]entry[K, V], o.buckets),
		hash:     hash,
		maxLoad:  o.maxLoadFactor,
		onRehash: o.onRehash,
	}
}

func (m *HashMap[K, V]) index(key K, bucketCount int) int {
	return int(m.hash(key) % uint64(bucketCount))
}

// Len returns the number of stored entries.
func (m *HashMap[K, V]) Len() int { return m.size }

// BucketCount returns the current number of buckets.
func (m *HashMap[K, V]) BucketCount() int { return len(m.buckets) }

// MaxLoadFactor returns the configured rehash threshold.
func (m *HashMap[K, V]) MaxLoadFactor() float64 { return m.maxLoad }

// LoadFactor returns size / bucketCount.
func (m *HashMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

func (m *HashMap[K, V]) rehash() {
	oldCount := len(m.buckets)
	newCount := oldCount * 2
	newBuckets := make([][]entry[K, V], newCount)

	for _, chain := range m.buckets {
		for _, e := range chain {
			i := m.index(e.key, newCount)
			newBuckets[i] = append(newBuckets[i], e)
		}
	}

	m.buckets = newBuckets
	if m.onRehash != nil {
		m.onRehash(oldCount, newCount)
	}
}

func (m *HashMap[K, V]) rehashIfNeeded() {
	for m.LoadFactor() > m.maxLoad {
		m.rehash()
	}
}

func (m *HashMap[K, V]) lookup(key K) *entry[K, V] {
	chain := m.buckets[m.index(key, len(m.buckets))]
	for i := range chain {
		if chain[i].key == key {
			return &chain[i]
		}
	}
	return nil
}

// Insert stores value under key, updating in place if key is present.
func (m *HashMap[K, V]) Insert(key K, value V) {
	if e := m.lookup(key); e != nil {
		e.value = value
		return
	}

	i := m.index(key, len(m.buckets))
	m.buckets[i] = append(m.buckets[i], entry[K, V]{key: key, value: value})
	m.size++

	m.rehashIfNeeded()
}

// Find returns a pointer to the value stored under key. The pointer is
// valid until the next Insert, At or Erase.
func (m *HashMap[K, V]) Find(key K) (*V, bool) {
	if e := m.lookup(key); e != nil {
		return &e.value, true
	}
	return nil, false
}

// Get returns a copy of the value stored under key.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	if e := m.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// MustGet is Get reporting absence as ErrNotFound.
func (m *HashMap[K, V]) MustGet(key K) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	var zero V
	return zero, cerrors.NotFound(name, "MustGet")
}

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	return m.lookup(key) != nil
}

// At returns a pointer to the value under key, inserting the zero value
// first when key is absent. The pointer is valid until the next Insert,
// At or Erase.
func (m *HashMap[K, V]) At(key K) *V {
	if e := m.lookup(key); e != nil {
		return &e.value
	}

	i := m.index(key, len(m.buckets))
	m.buckets[i] = append(m.buckets[i], entry[K, V]{key: key})
	m.size++

	m.rehashIfNeeded()

	return &m.lookup(key).value
}

// Erase removes key and reports whether it was present.
func (m *HashMap[K, V]) Erase(key K) bool {
	i := m.index(key, len(m.buckets))
	chain := m.buckets[i]
	for j := range chain {
		if chain[j].key == key {
			last := len(chain) - 1
			copy(chain[j:], chain[j+1:])
			chain[last] = entry[K, V]{}
			m.buckets[i] = chain[:last]
			m.size--
			return true
		}
	}
	return false
}

// Clear removes every entry but keeps the bucket count.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// All yields every entry in bucket order. The order is unspecified and
// changes across rehashes.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range m.buckets {
			for _, e := range chain {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// ChainLengths returns the length of every chain, indexed by bucket.
func (m *HashMap[K, V]) ChainLengths() []int {
	out := make([]int, len(m.buckets))
	for i, chain := range m.buckets {
		out[i] = len(chain)
	}
	return out
}
