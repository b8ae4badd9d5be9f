package generators

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
)

// NameProvider supplies random full person names ("Jane Doe").
type NameProvider interface {
	Name(rng *rand.Rand) string
}

// FakerNames draws from the go-faker corpus. faker keeps its own random
// source, so rng is not consulted and output is not reproducible.
type FakerNames struct{}

func (FakerNames) Name(_ *rand.Rand) string {
	return faker.FirstName() + " " + faker.LastName()
}

// ListNames composes names from fixed first and last name lists using the
// generator's random source. Use it where reproducible output matters.
type ListNames struct {
	First []string
	Last  []string
}

func (l ListNames) Name(rng *rand.Rand) string {
	first := l.First
	if len(first) == 0 {
		first = defaultFirstNames
	}
	last := l.Last
	if len(last) == 0 {
		last = defaultLastNames
	}
	return first[rng.Intn(len(first))] + " " + last[rng.Intn(len(last))]
}

var (
	defaultFirstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
		"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
	}
	defaultLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	}
)

// nameDrawer splits names on single spaces: token 0 is the first name and
// token 1 the last name. Names with prefixes or multi-word surnames split
// naively.
func (g *Generator) nameDrawer(p NameParams) (drawFunc, error) {
	idx := -1
	switch p.Type {
	case NameFull:
	case NameFirst:
		idx = 0
	case NameLast:
		idx = 1
	default:
		return nil, invalid(ParamNameType, "must be %q or %q, got %q", NameFirst, NameLast, p.Type)
	}

	return func() (any, error) {
		full := g.names.Name(g.rng)
		if idx < 0 {
			return full, nil
		}
		parts := strings.Split(full, " ")
		if idx >= len(parts) || parts[idx] == "" {
			return nil, fmt.Errorf("name %q has no %s name token", full, p.Type)
		}
		return parts[idx], nil
	}, nil
}
