package hiter

import "iter"

func Len[T any](s iter.Seq[T]) int {
	var i int
	for range s {
		i++
	}
	return i
}

func Index[V any](s iter.Seq[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		var i int
		for v := range s {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Limit stops s after n values. n <= 0 means no limit.
func Limit[V any](s iter.Seq[V], n int) iter.Seq[V] {
	if n <= 0 {
		return s
	}

	return func(yield func(V) bool) {
		var i int
		for v := range s {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}
