package bench

import (
	"math/rand/v2"

	"github.com/roach88/kbridge/internal/kval"
)

// NewRand returns the fixture generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fixture builds a long list of size random values.
func Fixture(rng *rand.Rand, size int) kval.List {
	data := make([]int64, size)
	for i := range data {
		data[i] = rng.Int64()
	}
	return kval.MustList(kval.TypeLong, data)
}

// Reverse returns a fresh list holding l's elements in reverse order.
func Reverse(l kval.List) kval.List {
	n := l.Len()
	atoms := make([]kval.Atom, n)
	for i := 0; i < n; i++ {
		atoms[i] = l.At(n - 1 - i)
	}
	out, err := kval.ListOf(l.Type(), atoms...)
	if err != nil {
		// atoms all come from l, so they share its type and domain
		panic(err)
	}
	if l.Type() == kval.TypeEnum && n == 0 {
		return kval.EnumsOf(l.Domain())
	}
	return out
}
