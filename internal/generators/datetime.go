package generators

import (
	"time"
)

// dateTimeDrawer samples whole seconds between the range bounds, so
// sub-second precision of the bounds is dropped. Without a range the draw
// spans the Unix epoch up to the generator clock.
func (g *Generator) dateTimeDrawer(p DateTimeParams) (drawFunc, error) {
	format, err := p.formatter()
	if err != nil {
		return nil, err
	}

	lo, hi := int64(0), g.now().Unix()
	if p.Range != nil {
		if err := p.Range.validate(); err != nil {
			return nil, err
		}
		lo, hi = p.Range.Min.Unix(), p.Range.Max.Unix()
	}
	if hi < lo {
		hi = lo
	}

	return func() (any, error) {
		ts := time.Unix(int64Between(g.rng, lo, hi), 0).UTC()
		if format != nil {
			return format.FormatString(ts), nil
		}
		return ts, nil
	}, nil
}
