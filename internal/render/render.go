// Package render writes generated rows in human and machine readable
// formats.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
)

type Formatter interface {
	Name() string
	Format(header []string, rows [][]any, w io.Writer) error
}

var formatters = map[string]Formatter{}

func register(f Formatter) { formatters[f.Name()] = f }

func init() {
	register(NewTable())
	register(NewCSV())
	register(NewJSON())
	register(NewYAML())
}

// Lookup returns the formatter registered under name.
func Lookup(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s (supported: %v)", name, Names())
	}
	return f, nil
}

// Names lists the registered formats in sorted order.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cell renders one value as text.
func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
