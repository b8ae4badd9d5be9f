package sqlframe

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type columnKind int

const (
	kindText columnKind = iota
	kindInt
	kindFloat
	kindTime
	kindBool
)

// dialect describes how one database/sql driver stores a frame.
type dialect struct {
	driver       string
	createPrefix string
	dropPrefix   string
	versionQuery string
	placeholder  func(n int) string
	columnType   func(k columnKind) string
	convert      func(v any) any
	quote        func(name string) string
}

var dialects = map[string]*dialect{}

func registerDialect(d *dialect, aliases ...string) {
	if d.quote == nil {
		d.quote = doubleQuote
	}
	if d.convert == nil {
		d.convert = func(v any) any { return v }
	}
	if d.dropPrefix == "" {
		d.dropPrefix = "DROP TABLE IF EXISTS"
	}
	dialects[d.driver] = d
	for _, alias := range aliases {
		dialects[alias] = d
	}
}

func lookupDialect(driver string) (*dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(driver))]
	if !ok {
		return nil, fmt.Errorf("unsupported sql driver: %s (supported: %s)", driver, strings.Join(Drivers(), ", "))
	}
	return d, nil
}

// Drivers lists the registered driver names, without aliases.
func Drivers() []string {
	var names []string
	for name, d := range dialects {
		if name == d.driver {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func questionMark(int) string { return "?" }

func dollar(n int) string { return fmt.Sprintf("$%d", n) }

func doubleQuote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func utcTime(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}
	return v
}

// kindOf infers a column kind from its first non-nil value.
func kindOf(values []any) columnKind {
	for _, v := range values {
		switch v.(type) {
		case nil:
			continue
		case int, int8, int16, int32, int64, uint8, uint16, uint32:
			return kindInt
		case float32, float64:
			return kindFloat
		case time.Time:
			return kindTime
		case bool:
			return kindBool
		default:
			return kindText
		}
	}
	return kindText
}

func (d *dialect) createTableSQL(table string, columns []string, kinds []columnKind) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = fmt.Sprintf("%s %s", d.quote(col), d.columnType(kinds[i]))
	}
	return fmt.Sprintf("%s %s (%s)", d.createPrefix, table, strings.Join(defs, ", "))
}

func (d *dialect) dropTableSQL(table string) string {
	return d.dropPrefix + " " + table
}

// insertSQL builds a multi-row INSERT for rowCount rows.
func (d *dialect) insertSQL(table string, columns []string, rowCount int) string {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = d.quote(col)
	}
	groups := make([]string, rowCount)
	n := 1
	for i := range groups {
		ph := make([]string, len(columns))
		for j := range columns {
			ph[j] = d.placeholder(n)
			n++
		}
		groups[i] = "(" + strings.Join(ph, ", ") + ")"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(quoted, ", "), strings.Join(groups, ", "))
}
