package exec

import (
	"errors"
	"fmt"

	"github.com/mmrzaf/blockgenie/internal/domain"
	"github.com/mmrzaf/blockgenie/internal/generators"
)

// Output is the result of one assembly. Exactly one shape is populated:
// Rows for row-major mode, Values for column-major mode. Columns always
// lists the schema's column names in order.
type Output struct {
	Mode    domain.Mode
	Columns []string
	Rows    [][]any
	Values  map[string][]any
}

// NumRows returns the number of generated rows.
func (o *Output) NumRows() int {
	if o.Mode == domain.ModeColumnMajor {
		if len(o.Columns) == 0 {
			return 0
		}
		return len(o.Values[o.Columns[0]])
	}
	return len(o.Rows)
}

// Assembler drives a Generator across a schema. Like the Generator it wraps,
// it is meant for use from one goroutine at a time.
type Assembler struct {
	gen *generators.Generator
}

func NewAssembler(gen *generators.Generator) *Assembler {
	return &Assembler{gen: gen}
}

// Assemble generates rowCount values for every column of schema. Any
// generator error aborts the whole assembly and no partial output is
// returned.
func (a *Assembler) Assemble(schema *domain.Schema, rowCount int, mode domain.Mode) (*Output, error) {
	if schema == nil {
		return nil, errors.New("schema is nil")
	}
	if rowCount < 0 {
		return nil, fmt.Errorf("row count must be >= 0, got %d", rowCount)
	}
	columns := schema.Columns()

	switch mode {
	case domain.ModeRowMajor, "":
		return a.rowMajor(columns, rowCount)
	case domain.ModeColumnMajor:
		return a.columnMajor(columns, rowCount)
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
}

// rowMajor resolves every column's params once, then draws cells with rows
// outer and columns inner.
func (a *Assembler) rowMajor(columns []domain.Column, rowCount int) (*Output, error) {
	out := &Output{
		Mode:    domain.ModeRowMajor,
		Columns: columnNames(columns),
		Rows:    make([][]any, 0, rowCount),
	}
	if rowCount == 0 {
		return out, nil
	}

	seqs := make([]*generators.Sequence, len(columns))
	for colIdx, col := range columns {
		seq, err := a.gen.GenerateMany(col.Category, rowCount, col.Params)
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", col.Name, err)
		}
		seqs[colIdx] = seq
	}

	for rowIdx := 0; rowIdx < rowCount; rowIdx++ {
		row := make([]any, len(columns))
		for colIdx, seq := range seqs {
			if !seq.Next() {
				err := seq.Err()
				if err == nil {
					err = errors.New("sequence exhausted")
				}
				return nil, fmt.Errorf("column '%s', row %d: %w", columns[colIdx].Name, rowIdx, err)
			}
			row[colIdx] = seq.Value()
		}
		out.Rows = append(out.Rows, row)
	}

	return out, nil
}

func (a *Assembler) columnMajor(columns []domain.Column, rowCount int) (*Output, error) {
	out := &Output{
		Mode:    domain.ModeColumnMajor,
		Columns: columnNames(columns),
		Values:  make(map[string][]any, len(columns)),
	}

	for _, col := range columns {
		if rowCount == 0 {
			out.Values[col.Name] = []any{}
			continue
		}
		seq, err := a.gen.GenerateMany(col.Category, rowCount, col.Params)
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", col.Name, err)
		}
		values, err := generators.Collect(seq)
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", col.Name, err)
		}
		out.Values[col.Name] = values
	}

	return out, nil
}

func columnNames(columns []domain.Column) []string {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return names
}
