package hmaps

import (
	"iter"
	"maps"
	"slices"
)

// SortedFunc iterates m in the key order given by cmp.
func SortedFunc[Map ~map[K]V, K comparable, V any](m Map, cmp func(a, b K) int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		keys := slices.SortedFunc(maps.Keys(m), cmp)

		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
