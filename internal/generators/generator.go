package generators

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/mmrzaf/blockgenie/internal/domain"
)

type drawFunc func() (any, error)

// Generator produces random values for a category. It owns a single
// *rand.Rand and is not safe for concurrent use; callers sharing a
// Generator across goroutines must synchronize access themselves.
//
// Values are int64 (integer), float64 (float), time.Time or string
// (datetime, string when a format is set) and string (name).
type Generator struct {
	rng   *rand.Rand
	names NameProvider
	now   func() time.Time
}

type Option func(*Generator)

func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

func WithNameProvider(p NameProvider) Option {
	return func(g *Generator) { g.names = p }
}

// WithClock sets the clock used for unranged datetimes and relative
// datetime bounds.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(randomSeed()))
	}
	if g.names == nil {
		g.names = FakerNames{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// Generate returns one value for category, configured by the loose params
// mapping of a column.
func (g *Generator) Generate(category domain.Category, params map[string]any) (any, error) {
	draw, err := g.prepare(category, params)
	if err != nil {
		return nil, err
	}
	return draw()
}

// Value returns one value for already typed params.
func (g *Generator) Value(p Params) (any, error) {
	draw, err := g.drawer(p)
	if err != nil {
		return nil, err
	}
	return draw()
}

// GenerateMany validates category and params once and returns a sequence
// that yields count values on demand.
func (g *Generator) GenerateMany(category domain.Category, count int, params map[string]any) (*Sequence, error) {
	if count < 0 {
		return nil, invalid("count", "must be >= 0, got %d", count)
	}
	draw, err := g.prepare(category, params)
	if err != nil {
		return nil, err
	}
	return &Sequence{draw: draw, remaining: count}, nil
}

func (g *Generator) prepare(category domain.Category, params map[string]any) (drawFunc, error) {
	if !category.Valid() {
		return nil, &InvalidCategoryError{Category: string(category)}
	}
	p, err := parseParams(category, params, g.now())
	if err != nil {
		return nil, err
	}
	return g.drawer(p)
}

func (g *Generator) drawer(p Params) (drawFunc, error) {
	switch p := p.(type) {
	case IntParams:
		return g.intDrawer(p)
	case *IntParams:
		if p == nil {
			return nil, invalid("params", "must not be nil")
		}
		return g.intDrawer(*p)
	case FloatParams:
		return g.floatDrawer(p)
	case *FloatParams:
		if p == nil {
			return nil, invalid("params", "must not be nil")
		}
		return g.floatDrawer(*p)
	case DateTimeParams:
		return g.dateTimeDrawer(p)
	case *DateTimeParams:
		if p == nil {
			return nil, invalid("params", "must not be nil")
		}
		return g.dateTimeDrawer(*p)
	case NameParams:
		return g.nameDrawer(p)
	case *NameParams:
		if p == nil {
			return nil, invalid("params", "must not be nil")
		}
		return g.nameDrawer(*p)
	case nil:
		return nil, invalid("params", "must not be nil")
	default:
		return nil, &InvalidCategoryError{Category: fmt.Sprintf("%T", p)}
	}
}

// Sequence is a finite, pull-based stream of generated values. It is not
// restartable; call GenerateMany again for a fresh sequence.
type Sequence struct {
	draw      drawFunc
	remaining int
	cur       any
	err       error
}

// Next advances to the next value. It returns false once the sequence is
// exhausted or a draw failed.
func (s *Sequence) Next() bool {
	if s.err != nil || s.remaining <= 0 {
		return false
	}
	v, err := s.draw()
	if err != nil {
		s.err = err
		s.remaining = 0
		s.cur = nil
		return false
	}
	s.cur = v
	s.remaining--
	return true
}

func (s *Sequence) Value() any { return s.cur }

func (s *Sequence) Err() error { return s.err }

// Remaining reports how many values are left to draw.
func (s *Sequence) Remaining() int { return s.remaining }

// Collect drains the sequence into a slice.
func Collect(s *Sequence) ([]any, error) {
	out := make([]any, 0, s.Remaining())
	for s.Next() {
		out = append(out, s.Value())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
