package distinctperm

import (
	"encoding/binary"
	"math/big"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/hephbuild/hperm/internal/hmultiset"
	"github.com/zeebo/xxh3"
)

type countEntry struct {
	sig string
	n   *big.Int
}

var countCache = cache.New(cache.AsLRU[uint64, countEntry](lru.WithCapacity(1024)))

// Count returns the number of distinct permutations of input,
// n! / (c1! * c2! * ... * ck!) where c1..ck are the multiplicities of its values.
// Count of an empty input is 0. Each NaN counts as a distinct value.
func Count[T comparable](input []T) *big.Int {
	if len(input) == 0 {
		return big.NewInt(0)
	}

	ms := hmultiset.Of(input).Multiplicities()

	var b []byte
	for _, m := range ms {
		b = binary.AppendUvarint(b, uint64(m))
	}
	sig := string(b)
	key := xxh3.HashString(sig)

	if e, ok := countCache.Get(key); ok && e.sig == sig {
		return new(big.Int).Set(e.n)
	}

	n := multinomial(ms)
	countCache.Set(key, countEntry{sig: sig, n: n})

	return new(big.Int).Set(n)
}

// multinomial computes (sum ms)! / prod(m!) as a product of binomials.
func multinomial(ms []int) *big.Int {
	res := big.NewInt(1)
	var b big.Int
	var total int64
	for _, m := range ms {
		total += int64(m)
		res.Mul(res, b.Binomial(total, int64(m)))
	}

	return res
}
