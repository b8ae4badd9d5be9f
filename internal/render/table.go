package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var _ Formatter = (*Table)(nil)

type Table struct{}

func NewTable() *Table { return &Table{} }

func (*Table) Name() string { return "table" }

func (*Table) Format(header []string, rows [][]any, w io.Writer) error {
	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}

	t := table.NewWriter()
	t.AppendHeader(headerRow)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = cell(v)
		}
		t.AppendRow(r)
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false

	if _, err := io.WriteString(w, t.Render()+"\n"); err != nil {
		return err
	}
	return nil
}
