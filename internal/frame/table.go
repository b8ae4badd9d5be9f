package frame

// Table is a minimal in-memory, column-oriented frame.
type Table struct {
	columns []string
	index   map[string]int
	data    [][]any
	rows    int
}

var _ Builder[*Table] = TableBuilder{}

type TableBuilder struct{}

func (TableBuilder) FromRows(columns []string, rows [][]any) (*Table, error) {
	values, err := ColumnsFromRows(columns, rows)
	if err != nil {
		return nil, err
	}
	return newTable(columns, values, len(rows)), nil
}

func (TableBuilder) FromColumns(columns []string, values map[string][]any) (*Table, error) {
	n, err := columnLength(columns, values)
	if err != nil {
		return nil, err
	}
	return newTable(columns, values, n), nil
}

func newTable(columns []string, values map[string][]any, n int) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		data:    make([][]any, len(columns)),
		rows:    n,
	}
	for i, name := range columns {
		t.index[name] = i
		t.data[i] = append([]any(nil), values[name]...)
	}
	return t
}

func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

func (t *Table) NumRows() int { return t.rows }

func (t *Table) NumColumns() int { return len(t.columns) }

func (t *Table) Column(name string) ([]any, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.data[i], true
}

// Row returns row i, or nil when i is out of range.
func (t *Table) Row(i int) []any {
	if i < 0 || i >= t.rows {
		return nil
	}
	row := make([]any, len(t.columns))
	for j := range t.columns {
		row[j] = t.data[j][i]
	}
	return row
}

func (t *Table) Rows() [][]any {
	rows := make([][]any, t.rows)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Head returns a new table with at most the first n rows.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > t.rows {
		n = t.rows
	}
	values := make(map[string][]any, len(t.columns))
	for j, name := range t.columns {
		values[name] = t.data[j][:n]
	}
	return newTable(t.columns, values, n)
}
