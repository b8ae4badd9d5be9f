package generators

import (
	"math"
	"math/rand"
)

// float64Between draws uniformly from [lo, hi].
func float64Between(rng *rand.Rand, lo, hi float64) float64 {
	u := rng.Float64()
	d := hi - lo
	var v float64
	if math.IsInf(d, 0) {
		v = lo*(1-u) + hi*u
	} else {
		v = lo + u*d
	}
	if v > hi {
		v = hi
	}
	return v
}

func (g *Generator) floatDrawer(p FloatParams) (drawFunc, error) {
	lo, hi := float64(DefaultMin), float64(DefaultMax)
	if p.Range != nil {
		if err := p.Range.validate(); err != nil {
			return nil, err
		}
		lo, hi = p.Range.Min, p.Range.Max
	}
	return func() (any, error) {
		return float64Between(g.rng, lo, hi), nil
	}, nil
}
