package distinctperm

import (
	"slices"

	"github.com/hephbuild/hperm/internal/hmultiset"
)

// search extends head with every distinct ordering of the values left in counts.
// head and counts are shared across the whole call tree and restored before each frame returns.
type search[S ~[]T, T comparable] struct {
	head   S
	counts *hmultiset.Counter[T]
	cmp    func(a, b T) int
}

func newSearch[S ~[]T, T comparable](input S, cmp func(a, b T) int) *search[S, T] {
	freq := make(map[T]int, len(input))
	for _, v := range input {
		freq[v]++
	}

	return &search[S, T]{
		head:   make(S, 0, len(input)),
		counts: hmultiset.From(freq),
		cmp:    cmp,
	}
}

// run reports false once yield asked to stop.
func (s *search[S, T]) run(yield func(S) bool) bool {
	keys := s.counts.Keys()
	slices.SortFunc(keys, s.cmp)

	for _, v := range keys {
		s.head = append(s.head, v)
		s.counts.Remove(v)

		var ok bool
		if s.counts.IsEmpty() {
			ok = yield(slices.Clone(s.head))
		} else {
			ok = s.run(yield)
		}

		s.head = s.head[:len(s.head)-1]
		s.counts.Add(v)

		if !ok {
			return false
		}
	}

	return true
}
