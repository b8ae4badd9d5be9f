package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

var _ Formatter = (*JSON)(nil)

type JSON struct{}

func NewJSON() *JSON { return &JSON{} }

func (*JSON) Name() string { return "json" }

// record marshals as a JSON object with keys in column order.
type record struct {
	header []string
	values []any
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.header {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (*JSON) Format(header []string, rows [][]any, w io.Writer) error {
	data := make([]record, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(header))
		}
		data = append(data, record{header: header, values: row})
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
