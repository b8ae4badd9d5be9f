package generators

import (
	"math"
	"math/rand"
)

// int64Between draws uniformly from [lo, hi] inclusive. lo must not exceed hi.
func int64Between(rng *rand.Rand, lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo)
	if span < math.MaxInt64 {
		return lo + rng.Int63n(int64(span)+1)
	}
	for {
		if v := rng.Uint64(); v <= span {
			return lo + int64(v)
		}
	}
}

func (g *Generator) intDrawer(p IntParams) (drawFunc, error) {
	lo, hi := int64(DefaultMin), int64(DefaultMax)
	if p.Range != nil {
		if err := p.Range.validate(); err != nil {
			return nil, err
		}
		lo, hi = p.Range.Min, p.Range.Max
	}
	return func() (any, error) {
		return int64Between(g.rng, lo, hi), nil
	}, nil
}
