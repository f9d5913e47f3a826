package distinctperm

import (
	"cmp"
	"iter"
	"math"
)

// All yields the distinct permutations of input in ascending lexicographic order.
// Every yielded slice is a new allocation owned by the caller.
//
// Elements must be equal to themselves: a floating-point NaN in input makes All panic.
func All[S ~[]T, T cmp.Ordered](input S) iter.Seq[S] {
	return AllFunc(input, cmp.Compare[T])
}

// AllFunc is like All, ordering elements with cmp, which must be a strict weak
// ordering consistent with ==. Values for which v != v, such as NaN, are not supported.
func AllFunc[S ~[]T, T comparable](input S, cmp func(a, b T) int) iter.Seq[S] {
	return func(yield func(S) bool) {
		newSearch(input, cmp).run(yield)
	}
}

// Distinct returns every distinct permutation of input, sorted lexicographically.
// For input without repeated elements this is all len(input)! permutations.
// As with All, input must not contain NaN.
func Distinct[S ~[]T, T cmp.Ordered](input S) []S {
	return DistinctFunc(input, cmp.Compare[T])
}

func DistinctFunc[S ~[]T, T comparable](input S, cmp func(a, b T) int) []S {
	res := make([]S, 0, sizeHint([]T(input)))
	for p := range AllFunc(input, cmp) {
		res = append(res, p)
	}

	return res
}

const maxSizeHint = 1 << 20

func sizeHint[T comparable](input []T) int {
	n := Count(input)
	if !n.IsInt64() || n.Int64() > math.MaxInt32 {
		return maxSizeHint
	}

	return int(min(n.Int64(), maxSizeHint))
}
