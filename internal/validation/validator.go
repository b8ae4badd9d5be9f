package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmrzaf/blockgenie/internal/domain"
	"github.com/mmrzaf/blockgenie/internal/generators"
)

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {},
		"right": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !identRe.MatchString(s) {
		return false
	}
	_, reserved := reservedWords[strings.ToLower(s)]
	return !reserved
}

// ValidateColumn checks the column name, its category and that its params
// parse for that category. Errors keep the generators error types.
func ValidateColumn(col domain.Column) error {
	if strings.TrimSpace(col.Name) == "" {
		return errors.New("column name is required")
	}
	if !col.Category.Valid() {
		return &generators.InvalidCategoryError{Category: string(col.Category)}
	}
	if _, err := generators.ParseParams(col.Category, col.Params); err != nil {
		return err
	}
	return nil
}

// ValidateSchema validates every column and reports the first failure.
func ValidateSchema(schema *domain.Schema) error {
	for _, col := range schema.Columns() {
		if err := ValidateColumn(col); err != nil {
			return fmt.Errorf("column '%s': %w", col.Name, err)
		}
	}
	return nil
}

// ValidateSQLColumns rejects names that are not safe SQL identifiers and
// names that collide once case is ignored.
func ValidateSQLColumns(names []string) error {
	if len(names) == 0 {
		return errors.New("at least one column is required")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !IsValidIdentifier(name) {
			return fmt.Errorf("invalid column identifier: %s", name)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("duplicate column name: %s", name)
		}
		seen[key] = true
	}
	return nil
}
