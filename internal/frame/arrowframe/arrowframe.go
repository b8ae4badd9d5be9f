// Package arrowframe builds Apache Arrow records from generated data.
//
// Column types are inferred from the first non-nil value: int64, float64,
// timestamp[s, UTC] or utf8. A column with no values becomes utf8. nil
// values are appended as nulls.
package arrowframe

import (
	"fmt"
	"io"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/mmrzaf/blockgenie/internal/frame"
)

var timestampType = &arrow.TimestampType{Unit: arrow.Second, TimeZone: "UTC"}

type Builder struct {
	mem memory.Allocator
}

var _ frame.Builder[arrow.Record] = (*Builder)(nil)

// NewBuilder returns a Builder using mem, or the Go allocator when mem is nil.
func NewBuilder(mem memory.Allocator) *Builder {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Builder{mem: mem}
}

// FromRows builds a record from row-major data. The caller must Release it.
func (b *Builder) FromRows(columns []string, rows [][]any) (arrow.Record, error) {
	values, err := frame.ColumnsFromRows(columns, rows)
	if err != nil {
		return nil, err
	}
	return b.build(columns, values, len(rows))
}

// FromColumns builds a record from column-major data. The caller must
// Release it.
func (b *Builder) FromColumns(columns []string, values map[string][]any) (arrow.Record, error) {
	rows, err := frame.RowsFromColumns(columns, values)
	if err != nil {
		return nil, err
	}
	return b.build(columns, values, len(rows))
}

func (b *Builder) build(columns []string, values map[string][]any, numRows int) (arrow.Record, error) {
	fields := make([]arrow.Field, len(columns))
	for i, name := range columns {
		fields[i] = arrow.Field{Name: name, Type: inferType(values[name]), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	rb := array.NewRecordBuilder(b.mem, schema)
	defer rb.Release()

	for i, name := range columns {
		if err := appendValues(rb.Field(i), values[name]); err != nil {
			return nil, fmt.Errorf("column '%s': %w", name, err)
		}
	}

	rec := rb.NewRecord()
	if int(rec.NumRows()) != numRows {
		rec.Release()
		return nil, fmt.Errorf("expected %d rows, built %d", numRows, rec.NumRows())
	}
	return rec, nil
}

func inferType(values []any) arrow.DataType {
	for _, v := range values {
		switch v.(type) {
		case nil:
			continue
		case int, int8, int16, int32, int64:
			return arrow.PrimitiveTypes.Int64
		case float32, float64:
			return arrow.PrimitiveTypes.Float64
		case time.Time:
			return timestampType
		default:
			return arrow.BinaryTypes.String
		}
	}
	return arrow.BinaryTypes.String
}

func appendValues(fb array.Builder, values []any) error {
	for i, v := range values {
		if v == nil {
			fb.AppendNull()
			continue
		}
		var ok bool
		switch bld := fb.(type) {
		case *array.Int64Builder:
			var n int64
			if n, ok = asInt64(v); ok {
				bld.Append(n)
			}
		case *array.Float64Builder:
			var f float64
			if f, ok = asFloat64(v); ok {
				bld.Append(f)
			}
		case *array.TimestampBuilder:
			var ts time.Time
			if ts, ok = v.(time.Time); ok {
				bld.Append(arrow.Timestamp(ts.Unix()))
			}
		case *array.StringBuilder:
			ok = true
			if s, isStr := v.(string); isStr {
				bld.Append(s)
			} else {
				bld.Append(fmt.Sprint(v))
			}
		default:
			return fmt.Errorf("unsupported builder %T", fb)
		}
		if !ok {
			return fmt.Errorf("row %d: value %v (%T) does not match column type %s", i, v, v, fb.Type())
		}
	}
	return nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// WriteIPC writes rec to w as an Arrow IPC stream.
func WriteIPC(w io.Writer, rec arrow.Record) error {
	wr := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := wr.Write(rec); err != nil {
		wr.Close()
		return fmt.Errorf("failed to write arrow stream: %w", err)
	}
	return wr.Close()
}
