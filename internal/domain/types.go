package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryDateTime Category = "datetime"
	CategoryFloat    Category = "float"
	CategoryInteger  Category = "integer"
	CategoryName     Category = "name"
)

// Categories lists every supported category in display order.
func Categories() []Category {
	return []Category{CategoryDateTime, CategoryFloat, CategoryInteger, CategoryName}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDateTime, CategoryFloat, CategoryInteger, CategoryName:
		return true
	default:
		return false
	}
}

// Column is a single named column of a schema. Params holds the loose,
// per-category generation parameters (int_range, datetime_format, ...).
type Column struct {
	Name     string         `json:"name" yaml:"name"`
	Category Category       `json:"category" yaml:"category"`
	Params   map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

type Mode string

const (
	ModeRowMajor    Mode = "row"
	ModeColumnMajor Mode = "column"
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row", "rows", "row_major", "v1":
		return ModeRowMajor, nil
	case "column", "columns", "column_major", "v2":
		return ModeColumnMajor, nil
	default:
		return "", fmt.Errorf("unknown mode: %s", s)
	}
}

// Schema is an ordered set of columns keyed by name. Setting an existing
// name replaces the column in place and keeps its position.
type Schema struct {
	columns []Column
	index   map[string]int
}

func NewSchema(cols ...Column) *Schema {
	s := &Schema{index: make(map[string]int)}
	for _, c := range cols {
		s.Set(c)
	}
	return s
}

func (s *Schema) Set(col Column) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[col.Name]; ok {
		s.columns[i] = col
		return
	}
	s.index[col.Name] = len(s.columns)
	s.columns = append(s.columns, col)
}

// Remove deletes the named column and reports whether it existed.
func (s *Schema) Remove(name string) bool {
	i, ok := s.index[name]
	if !ok {
		return false
	}
	s.columns = append(s.columns[:i], s.columns[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.columns); j++ {
		s.index[s.columns[j].Name] = j
	}
	return true
}

func (s *Schema) Get(name string) (Column, bool) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, false
	}
	return s.columns[i], true
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Columns returns the columns in schema order. The slice is a copy.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}

func (s *Schema) Len() int {
	return len(s.columns)
}
