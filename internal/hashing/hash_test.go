package hashing

import (
	"testing"
	"time"

	"github.com/mmrzaf/blockgenie/internal/domain"
)

func TestHashSchema_StableAcrossEquivalentParams(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := domain.NewSchema(
		domain.Column{Name: "id", Category: domain.CategoryInteger, Params: map[string]any{"int_range": []int{1, 10}}},
		domain.Column{Name: "ts", Category: domain.CategoryDateTime, Params: map[string]any{
			"datetime_format": "%Y",
			"datetime_range":  []time.Time{day, day.Add(time.Hour)},
		}},
	)
	b := domain.NewSchema(
		domain.Column{Name: "id", Category: domain.CategoryInteger, Params: map[string]any{"int_range": []any{int64(1), 10.0}}},
		domain.Column{Name: "ts", Category: domain.CategoryDateTime, Params: map[string]any{
			"datetime_range":  []any{day.In(time.FixedZone("X", 3600)), day.Add(time.Hour)},
			"datetime_format": "%Y",
		}},
	)

	h1, err := HashSchema(a, 10)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashSchema(b, 10)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Fatalf("expected equal hashes, got %s vs %s", h1, h2)
	}
}

func TestHashSchema_SensitiveToOrderRowsAndParams(t *testing.T) {
	base := func() *domain.Schema {
		return domain.NewSchema(
			domain.Column{Name: "a", Category: domain.CategoryInteger},
			domain.Column{Name: "b", Category: domain.CategoryName},
		)
	}
	h1, _ := HashSchema(base(), 10)

	h2, _ := HashSchema(base(), 11)
	if h1 == h2 {
		t.Fatal("expected row count to affect hash")
	}

	reordered := domain.NewSchema(
		domain.Column{Name: "b", Category: domain.CategoryName},
		domain.Column{Name: "a", Category: domain.CategoryInteger},
	)
	h3, _ := HashSchema(reordered, 10)
	if h1 == h3 {
		t.Fatal("expected column order to affect hash")
	}

	withParams := base()
	withParams.Set(domain.Column{Name: "b", Category: domain.CategoryName, Params: map[string]any{"name_type": "last"}})
	h4, _ := HashSchema(withParams, 10)
	if h1 == h4 {
		t.Fatal("expected params to affect hash")
	}
}
