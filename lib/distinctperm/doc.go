// Package distinctperm generates the distinct permutations of a multiset.
//
// Equal elements collapse into a single candidate at every position of the search,
// so no duplicate permutation is ever built: the work done is proportional to the
// number of distinct permutations produced, not to n!.
//
// Permutations come out in lexicographic order:
//
//	for p := range distinctperm.All([]int{0, 0, 1}) {
//		fmt.Println(p) // [0 0 1], [0 1 0], [1 0 0]
//	}
//
// All and AllFunc stream results. Distinct and DistinctFunc collect them into a slice.
// An empty input has no permutations. Elements must be totally ordered and
// equal to themselves, so floating-point inputs must not contain NaN.
package distinctperm
