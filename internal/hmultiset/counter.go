// Package hmultiset holds a counting multiset used as mutable search state.
package hmultiset

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Counter maps each distinct value to its remaining multiplicity.
// A value whose count drops to zero is removed, so every stored count is positive.
type Counter[T comparable] struct {
	counts map[T]int
	len    int
}

// From builds a Counter from value counts. It panics if a count is not positive.
func From[T comparable](counts map[T]int) *Counter[T] {
	var total int
	for v, c := range counts {
		if c <= 0 {
			panic(fmt.Sprintf("hmultiset: count for %v must be positive, got %d", v, c))
		}
		total += c
	}

	return &Counter[T]{counts: maps.Clone(counts), len: total}
}

// Of counts the occurrences of each value in vs.
func Of[T comparable](vs []T) *Counter[T] {
	counts := make(map[T]int, len(vs))
	for _, v := range vs {
		counts[v]++
	}

	return &Counter[T]{counts: counts, len: len(vs)}
}

// Keys returns the distinct values present, in no particular order.
func (c *Counter[T]) Keys() []T {
	keys := make([]T, 0, len(c.counts))
	for k := range c.counts {
		keys = append(keys, k)
	}
	return keys
}

func (c *Counter[T]) Add(v T) {
	if c.counts == nil {
		c.counts = map[T]int{}
	}
	c.counts[v]++
	c.len++
}

// Remove takes one occurrence of v out of the counter.
// v must be present.
func (c *Counter[T]) Remove(v T) {
	n, ok := c.counts[v]
	if !ok {
		panic(fmt.Sprintf("hmultiset: remove of absent value %v", v))
	}

	if n == 1 {
		delete(c.counts, v)
	} else {
		c.counts[v] = n - 1
	}
	c.len--
}

func (c *Counter[T]) IsEmpty() bool {
	return len(c.counts) == 0
}

// Len is the total number of elements, counting repeats.
func (c *Counter[T]) Len() int {
	return c.len
}

// Distinct is the number of distinct values.
func (c *Counter[T]) Distinct() int {
	return len(c.counts)
}

func (c *Counter[T]) Count(v T) int {
	return c.counts[v]
}

func (c *Counter[T]) All() iter.Seq2[T, int] {
	return maps.All(c.counts)
}

// Multiplicities returns the counts of all distinct values in ascending order.
// Two counters with the same multiplicities have the same number of distinct permutations.
func (c *Counter[T]) Multiplicities() []int {
	return slices.Sorted(maps.Values(c.counts))
}
