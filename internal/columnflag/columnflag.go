// Package columnflag parses column definitions given on the command line.
//
// The form is name:category[:key=value;key=value]. Values of *_range keys
// are split on commas, so int_range=18,65 yields [18 65]; other values keep
// their commas ("%d, %b %Y"). Scalars are
// parsed as int64, float64 or bool where possible and kept as strings
// otherwise; "null" is nil.
package columnflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmrzaf/blockgenie/internal/domain"
)

func Parse(def string) (domain.Column, error) {
	parts := strings.SplitN(strings.TrimSpace(def), ":", 3)
	if len(parts) < 2 {
		return domain.Column{}, fmt.Errorf("invalid column %q: expected name:category[:params]", def)
	}
	col := domain.Column{
		Name:     strings.TrimSpace(parts[0]),
		Category: domain.Category(strings.ToLower(strings.TrimSpace(parts[1]))),
	}
	if col.Name == "" {
		return domain.Column{}, fmt.Errorf("invalid column %q: name is empty", def)
	}
	if len(parts) == 3 {
		params, err := parseParams(parts[2])
		if err != nil {
			return domain.Column{}, fmt.Errorf("invalid column %q: %w", def, err)
		}
		col.Params = params
	}
	return col, nil
}

// ParseAll parses every definition, stopping at the first error.
func ParseAll(defs []string) ([]domain.Column, error) {
	cols := make([]domain.Column, 0, len(defs))
	for _, def := range defs {
		col, err := Parse(def)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func parseParams(s string) (map[string]any, error) {
	params := map[string]any{}
	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("param %q: expected key=value", kv)
		}
		if strings.HasSuffix(key, "_range") {
			items := strings.Split(value, ",")
			list := make([]any, len(items))
			for i, item := range items {
				list[i] = scalar(item)
			}
			params[key] = list
			continue
		}
		params[key] = scalar(value)
	}
	return params, nil
}

func scalar(s string) any {
	s = strings.TrimSpace(s)
	if s == "null" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
