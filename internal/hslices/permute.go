package hslices

import (
	"iter"
	"slices"
)

// Permute yields every ordering of arr, treating equal elements as distinguishable,
// so a slice of n elements yields n! permutations. arr itself is left untouched.
func Permute[T any](arr []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(arr) == 0 {
			yield([]T{})
			return
		}

		permute(slices.Clone(arr), 0, yield)
	}
}

func permute[T any](arr []T, l int, yield func([]T) bool) bool {
	if l == len(arr)-1 {
		return yield(slices.Clone(arr))
	}

	for i := l; i < len(arr); i++ {
		arr[l], arr[i] = arr[i], arr[l]
		ok := permute(arr, l+1, yield)
		arr[l], arr[i] = arr[i], arr[l] // backtrack
		if !ok {
			return false
		}
	}

	return true
}
