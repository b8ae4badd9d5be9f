package generators

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/mmrzaf/blockgenie/internal/domain"
)

func newTestGenerator(seed int64) *Generator {
	return New(
		WithSeed(seed),
		WithNameProvider(ListNames{}),
		WithClock(func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }),
	)
}

func TestGenerateMany_IntegerRange(t *testing.T) {
	g := newTestGenerator(1)
	seq, err := g.GenerateMany(domain.CategoryInteger, 500, map[string]any{"int_range": []any{-3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	values, err := Collect(seq)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 500 {
		t.Fatalf("expected 500 values, got %d", len(values))
	}
	seen := make(map[int64]bool)
	for _, v := range values {
		n, ok := v.(int64)
		if !ok {
			t.Fatalf("expected int64, got %T", v)
		}
		if n < -3 || n > 4 {
			t.Fatalf("value %d out of range", n)
		}
		seen[n] = true
	}
	if !seen[-3] || !seen[4] {
		t.Fatalf("expected inclusive bounds to be drawn, saw %v", seen)
	}
}

func TestGenerate_IntegerSinglePointAndWideRange(t *testing.T) {
	g := newTestGenerator(2)
	v, err := g.Generate(domain.CategoryInteger, map[string]any{"int_range": []int64{5, 5}})
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(5) {
		t.Fatalf("expected 5, got %v", v)
	}

	for i := 0; i < 100; i++ {
		if _, err := g.Value(IntParams{Range: &IntRange{Min: math.MinInt64, Max: math.MaxInt64}}); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGenerate_IntegerDefaultBounds(t *testing.T) {
	g := newTestGenerator(3)
	for i := 0; i < 200; i++ {
		v, err := g.Generate(domain.CategoryInteger, nil)
		if err != nil {
			t.Fatal(err)
		}
		n := v.(int64)
		if n < DefaultMin || n > DefaultMax {
			t.Fatalf("value %d outside default bounds", n)
		}
	}
}

func TestGenerate_RangeValidation(t *testing.T) {
	g := newTestGenerator(4)
	bad := []map[string]any{
		{"int_range": []any{1}},
		{"int_range": []any{1, 2, 3}},
		{"int_range": []any{}},
		{"int_range": []any{nil, 2}},
		{"int_range": []*int64{nil, nil}},
		{"int_range": []any{9, 1}},
		{"int_range": []any{1.5, 2}},
		{"int_range": "1,2"},
	}
	for _, params := range bad {
		_, err := g.Generate(domain.CategoryInteger, params)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("params %v: expected ValidationError, got %v", params, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("params %v: expected errors.Is ErrValidation", params)
		}
	}

	badFloat := []map[string]any{
		{"float_range": []any{2.0, 1.0}},
		{"float_range": []any{1.0, nil}},
		{"float_range": []float64{math.NaN(), 1}},
		{"float_range": []any{"a", "b"}},
	}
	for _, params := range badFloat {
		if _, err := g.Generate(domain.CategoryFloat, params); !errors.Is(err, ErrValidation) {
			t.Fatalf("params %v: expected ValidationError, got %v", params, err)
		}
	}

	if _, err := g.Value(IntParams{Range: &IntRange{Min: 5, Max: 1}}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected typed range validation error, got %v", err)
	}
}

func TestGenerate_ValidationHappensBeforeDraw(t *testing.T) {
	src := rand.New(rand.NewSource(9))
	ref := rand.New(rand.NewSource(9))
	g := New(WithRand(src), WithNameProvider(ListNames{}))

	if _, err := g.GenerateMany(domain.CategoryInteger, 10, map[string]any{"int_range": []any{3, 1}}); err == nil {
		t.Fatal("expected validation error")
	}
	if src.Int63() != ref.Int63() {
		t.Fatal("expected no random draw before validation failure")
	}
}

func TestGenerate_FloatAlwaysFloat(t *testing.T) {
	g := newTestGenerator(5)
	seq, err := g.GenerateMany(domain.CategoryFloat, 100, map[string]any{"float_range": []int{1, 3}})
	if err != nil {
		t.Fatal(err)
	}
	for seq.Next() {
		f, ok := seq.Value().(float64)
		if !ok {
			t.Fatalf("expected float64, got %T", seq.Value())
		}
		if f < 1 || f > 3 {
			t.Fatalf("value %v out of range", f)
		}
	}
	if err := seq.Err(); err != nil {
		t.Fatal(err)
	}

	v, err := g.Generate(domain.CategoryFloat, nil)
	if err != nil {
		t.Fatal(err)
	}
	f := v.(float64)
	if f < DefaultMin || f > DefaultMax {
		t.Fatalf("value %v outside default bounds", f)
	}
}

func TestGenerate_DateTimeRange(t *testing.T) {
	g := newTestGenerator(6)
	lo := time.Date(2023, 1, 1, 10, 0, 0, 500, time.UTC)
	hi := time.Date(2023, 1, 1, 10, 0, 30, 900, time.UTC)

	seq, err := g.GenerateMany(domain.CategoryDateTime, 300, map[string]any{"datetime_range": []time.Time{lo, hi}})
	if err != nil {
		t.Fatal(err)
	}
	values, err := Collect(seq)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range values {
		ts, ok := v.(time.Time)
		if !ok {
			t.Fatalf("expected time.Time, got %T", v)
		}
		if ts.Before(lo.Truncate(time.Second)) || ts.After(hi.Truncate(time.Second)) {
			t.Fatalf("timestamp %v out of range", ts)
		}
		if ts.Nanosecond() != 0 {
			t.Fatalf("expected second precision, got %v", ts)
		}
	}
}

func TestGenerate_DateTimeValidationAndFormat(t *testing.T) {
	g := newTestGenerator(7)
	day := time.Date(2024, 3, 5, 8, 9, 10, 0, time.UTC)

	v, err := g.Generate(domain.CategoryDateTime, map[string]any{
		"datetime_range":  []any{day, day},
		"datetime_format": "%Y-%m-%d %H:%M:%S",
	})
	if err != nil {
		t.Fatal(err)
	}
	if v != "2024-03-05 08:09:10" {
		t.Fatalf("unexpected formatted value: %#v", v)
	}

	v, err = g.Generate(domain.CategoryDateTime, map[string]any{
		"datetime_range":  []any{day, day},
		"datetime_format": "%Y-%m-%d %H:%M:%S.%f",
	})
	if err != nil {
		t.Fatal(err)
	}
	if v != "2024-03-05 08:09:10.000000" {
		t.Fatalf("unexpected microsecond format: %#v", v)
	}

	_, err = g.Generate(domain.CategoryDateTime, map[string]any{"datetime_format": "%Q"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Param != ParamDateTimeFormat || verr.Unwrap() == nil {
		t.Fatalf("expected wrapped format ValidationError, got %v", err)
	}

	bad := []map[string]any{
		{"datetime_range": []any{day.Add(time.Hour), day}},
		{"datetime_range": []any{day}},
		{"datetime_range": []any{day, nil}},
		{"datetime_range": []any{"not a time", day}},
	}
	for _, params := range bad {
		if _, err := g.Generate(domain.CategoryDateTime, params); !errors.Is(err, ErrValidation) {
			t.Fatalf("params %v: expected ValidationError, got %v", params, err)
		}
	}
}

func TestValue_TypedNilParams(t *testing.T) {
	g := newTestGenerator(12)
	for _, p := range []Params{(*IntParams)(nil), (*FloatParams)(nil), (*DateTimeParams)(nil), (*NameParams)(nil), nil} {
		if _, err := g.Value(p); !errors.Is(err, ErrValidation) {
			t.Fatalf("%T: expected ValidationError, got %v", p, err)
		}
	}

	v, err := g.Value(&IntParams{Range: &IntRange{Min: 3, Max: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(3) {
		t.Fatalf("expected 3, got %#v", v)
	}
}

func TestGenerate_DateTimeDefaultAndRelative(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	g := newTestGenerator(8)

	for i := 0; i < 50; i++ {
		v, err := g.Generate(domain.CategoryDateTime, nil)
		if err != nil {
			t.Fatal(err)
		}
		ts := v.(time.Time)
		if ts.Before(time.Unix(0, 0)) || ts.After(now) {
			t.Fatalf("default timestamp %v outside [epoch, now]", ts)
		}
	}

	v, err := g.Generate(domain.CategoryDateTime, map[string]any{"datetime_range": []string{"-7d", "now"}})
	if err != nil {
		t.Fatal(err)
	}
	ts := v.(time.Time)
	if ts.Before(now.Add(-7*24*time.Hour)) || ts.After(now) {
		t.Fatalf("relative timestamp %v outside range", ts)
	}
}

func TestGenerate_NameTokens(t *testing.T) {
	full, err := newTestGenerator(11).Generate(domain.CategoryName, nil)
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(full.(string), " ")
	if len(parts) != 2 {
		t.Fatalf("expected two-token name, got %q", full)
	}

	first, err := newTestGenerator(11).Generate(domain.CategoryName, map[string]any{"name_type": "first"})
	if err != nil {
		t.Fatal(err)
	}
	if first != parts[0] {
		t.Fatalf("expected first token %q, got %q", parts[0], first)
	}

	last, err := newTestGenerator(11).Generate(domain.CategoryName, map[string]any{"name_type": "last", "full_name": true})
	if err != nil {
		t.Fatal(err)
	}
	if last != parts[1] {
		t.Fatalf("expected last token %q, got %q", parts[1], last)
	}

	whole, err := newTestGenerator(11).Generate(domain.CategoryName, map[string]any{"full_name": false})
	if err != nil {
		t.Fatal(err)
	}
	if whole != full {
		t.Fatalf("expected full_name to be ignored without name_type, got %q", whole)
	}

	if _, err := newTestGenerator(11).Generate(domain.CategoryName, map[string]any{"name_type": "middle"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ValidationError for unknown name_type, got %v", err)
	}
}

func TestGenerate_FakerNamesNonEmpty(t *testing.T) {
	g := New()
	v, err := g.Generate(domain.CategoryName, map[string]any{"name_type": "first"})
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := v.(string); s == "" {
		t.Fatalf("expected non-empty first name, got %#v", v)
	}
}

type singleTokenNames struct{}

func (singleTokenNames) Name(*rand.Rand) string { return "Cher" }

func TestSequence_StopsOnDrawError(t *testing.T) {
	g := New(WithSeed(1), WithNameProvider(singleTokenNames{}))
	seq, err := g.GenerateMany(domain.CategoryName, 3, map[string]any{"name_type": "last"})
	if err != nil {
		t.Fatal(err)
	}
	if seq.Next() {
		t.Fatal("expected no value for a single-token name")
	}
	if seq.Err() == nil {
		t.Fatal("expected draw error")
	}
	if seq.Next() {
		t.Fatal("expected sequence to stay finished")
	}
}

func TestGenerate_InvalidCategory(t *testing.T) {
	g := newTestGenerator(12)
	_, err := g.Generate("currency", nil)
	var cerr *InvalidCategoryError
	if !errors.As(err, &cerr) || cerr.Category != "currency" {
		t.Fatalf("expected InvalidCategoryError, got %v", err)
	}
	if _, err := g.GenerateMany("currency", 5, nil); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected InvalidCategoryError for batch generation, got %v", err)
	}
	if _, err := ParseParams("currency", nil); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected InvalidCategoryError from ParseParams, got %v", err)
	}
}

func TestSequence_FiniteAndNotRestartable(t *testing.T) {
	g := newTestGenerator(13)
	seq, err := g.GenerateMany(domain.CategoryInteger, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for seq.Next() {
		n++
	}
	if n != 2 || seq.Remaining() != 0 {
		t.Fatalf("expected 2 values, got %d", n)
	}
	if seq.Next() {
		t.Fatal("expected exhausted sequence")
	}

	empty, err := g.GenerateMany(domain.CategoryInteger, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if values, _ := Collect(empty); len(values) != 0 {
		t.Fatalf("expected empty sequence, got %v", values)
	}

	if _, err := g.GenerateMany(domain.CategoryInteger, -1, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected error for negative count, got %v", err)
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)
	for _, cat := range domain.Categories() {
		va, err := a.Generate(cat, nil)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := b.Generate(cat, nil)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("category %s: %v != %v", cat, va, vb)
		}
	}
}
