// Package frame defines how generated data is handed to a dataframe
// implementation. A Builder receives either row-major data (rows aligned
// with column names) or column-major data (column name to values) and
// returns its own frame type.
package frame

import (
	"fmt"
)

type Builder[F any] interface {
	FromRows(columns []string, rows [][]any) (F, error)
	FromColumns(columns []string, values map[string][]any) (F, error)
}

// ColumnsFromRows transposes row-major data into a column mapping.
func ColumnsFromRows(columns []string, rows [][]any) (map[string][]any, error) {
	if err := checkColumns(columns); err != nil {
		return nil, err
	}
	values := make(map[string][]any, len(columns))
	for _, name := range columns {
		values[name] = make([]any, 0, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(columns))
		}
		for j, name := range columns {
			values[name] = append(values[name], row[j])
		}
	}
	return values, nil
}

// RowsFromColumns transposes a column mapping into rows ordered by columns.
func RowsFromColumns(columns []string, values map[string][]any) ([][]any, error) {
	n, err := columnLength(columns, values)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, n)
	for i := range rows {
		row := make([]any, len(columns))
		for j, name := range columns {
			row[j] = values[name][i]
		}
		rows[i] = row
	}
	return rows, nil
}

func columnLength(columns []string, values map[string][]any) (int, error) {
	if err := checkColumns(columns); err != nil {
		return 0, err
	}
	n := -1
	for _, name := range columns {
		col, ok := values[name]
		if !ok {
			return 0, fmt.Errorf("missing values for column %q", name)
		}
		if n >= 0 && len(col) != n {
			return 0, fmt.Errorf("column %q has %d values, expected %d", name, len(col), n)
		}
		n = len(col)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

func checkColumns(columns []string) error {
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if seen[name] {
			return fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}
	return nil
}
