package streamapi

import (
	"context"
	"math/rand/v2"

	"github.com/deadlyengineer/gostreams"
)

const (
	// RandomDraws is the number of integers drawn by RandomSquares, before filtering.
	RandomDraws = 10

	// RandomBound is the exclusive upper bound of drawn integers.
	RandomBound = 10
)

// IntSource returns uniformly distributed integers in [0, n).
// *rand.Rand implements IntSource.
type IntSource interface {
	IntN(n int) int
}

// NewRandomSource returns a randomly seeded source owned by the caller.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandomSquares draws RandomDraws integers from src, keeps the even ones and
// returns their squares in draw order.
func RandomSquares(src IntSource) []int {
	ints := gostreams.Generate(gostreams.FuncSupplier(func() int {
		return src.IntN(RandomBound)
	}))

	ints = gostreams.Limit(ints, RandomDraws)

	ints = gostreams.Filter(ints, gostreams.FuncPredicate(func(n int) bool {
		return n%2 == 0
	}))

	ints = gostreams.Map(ints, gostreams.FuncMapper(func(n int) int {
		return n * n
	}))

	squares, _ := gostreams.ReduceSlice(context.Background(), ints)

	return squares
}
