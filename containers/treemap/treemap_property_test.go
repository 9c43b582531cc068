//go:build property

package treemap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func strictlyAscending(m *OrderedMap[int, int]) bool {
	first := true
	var prev int
	for k := range m.Keys() {
		if !first && k <= prev {
			return false
		}
		prev, first = k, false
	}
	return true
}

func TestOrderedMapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("in-order traversal is strictly ascending", prop.ForAll(
		func(keys []int) bool {
			m := New[int, int]()
			for _, k := range keys {
				m.Insert(k, k)
			}
			return strictlyAscending(m)
		},
		gen.SliceOf(gen.IntRange(-500, 500)),
	))

	properties.Property("find after insert, miss after erase", prop.ForAll(
		func(keys []int, eraseEvery int) bool {
			m := New[int, int]()
			for i, k := range keys {
				m.Insert(k, i)
			}
			for _, k := range keys {
				if !m.Contains(k) {
					return false
				}
			}
			model := make(map[int]bool)
			for _, k := range keys {
				model[k] = true
			}
			for i, k := range keys {
				if i%eraseEvery == 0 {
					m.Erase(k)
					delete(model, k)
					if m.Contains(k) {
						return false
					}
				}
			}
			return m.Len() == len(model) && strictlyAscending(m)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
		gen.IntRange(1, 4),
	))

	properties.TestingRun(t)
}
