package distinctperm

import (
	"cmp"
	"slices"

	"github.com/hephbuild/hperm/internal/hslices"
)

// Naive computes the same result as Distinct by generating all n! orderings,
// sorting them and dropping duplicates. It is exponentially slower on inputs with
// repeated values and only exists as a reference.
func Naive[S ~[]T, T cmp.Ordered](input S) []S {
	if len(input) == 0 {
		return []S{}
	}

	var res []S
	for p := range hslices.Permute([]T(input)) {
		res = append(res, S(p))
	}

	slices.SortFunc(res, func(a, b S) int {
		return slices.Compare(a, b)
	})

	return slices.CompactFunc(res, func(a, b S) bool {
		return slices.Equal(a, b)
	})
}
