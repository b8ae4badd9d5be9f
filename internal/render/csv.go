package render

import (
	"encoding/csv"
	"fmt"
	"io"
)

var _ Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV { return &CSV{} }

func (*CSV) Name() string { return "csv" }

func (*CSV) Format(header []string, rows [][]any, w io.Writer) error {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, header)
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = cell(v)
		}
		data = append(data, rec)
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(data); err != nil {
		return fmt.Errorf("csv.WriteAll: %w", err)
	}
	return nil
}
