package app

import (
	"fmt"
	"strings"

	"github.com/mmrzaf/blockgenie/internal/domain"
	"github.com/mmrzaf/blockgenie/internal/exec"
	"github.com/mmrzaf/blockgenie/internal/frame"
	"github.com/mmrzaf/blockgenie/internal/generators"
	"github.com/mmrzaf/blockgenie/internal/hashing"
	"github.com/mmrzaf/blockgenie/internal/logging"
)

const DefaultRowCount = 100

// Genie holds a row count and an ordered schema, and turns them into
// dataframes through a frame.Builder. It is not safe for concurrent use.
type Genie struct {
	rowCount  int
	schema    *domain.Schema
	mode      domain.Mode
	assembler *exec.Assembler
	logger    *logging.Logger
}

type GenieOption func(*Genie)

func WithGenerator(gen *generators.Generator) GenieOption {
	return func(g *Genie) { g.assembler = exec.NewAssembler(gen) }
}

func WithMode(mode domain.Mode) GenieOption {
	return func(g *Genie) { g.mode = mode }
}

// NewGenie returns an empty Genie. A nil logger discards diagnostics.
func NewGenie(rowCount int, logger *logging.Logger, opts ...GenieOption) (*Genie, error) {
	if rowCount < 0 {
		return nil, &generators.ValidationError{Param: "row_count", Reason: fmt.Sprintf("must be >= 0, got %d", rowCount)}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	g := &Genie{
		rowCount: rowCount,
		schema:   domain.NewSchema(),
		mode:     domain.ModeRowMajor,
		logger:   logger.WithComponent("genie"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.assembler == nil {
		g.assembler = exec.NewAssembler(generators.New())
	}
	mode, err := domain.ParseMode(string(g.mode))
	if err != nil {
		return nil, err
	}
	g.mode = mode
	return g, nil
}

// AddColumn adds a column, or replaces an existing one with the same name
// while keeping its position.
func (g *Genie) AddColumn(name string, category domain.Category, params map[string]any) {
	g.AddColumns(domain.Column{Name: name, Category: category, Params: params})
}

func (g *Genie) AddColumns(cols ...domain.Column) {
	for _, col := range cols {
		replaced := g.schema.Has(col.Name)
		g.schema.Set(col)
		g.logger.Debugw("column.added", map[string]any{
			"column":   col.Name,
			"category": string(col.Category),
			"replaced": replaced,
		})
	}
}

// RemoveColumns deletes columns by name. Unknown names are reported as a
// warning and otherwise ignored.
func (g *Genie) RemoveColumns(names ...string) {
	for _, name := range names {
		if g.schema.Remove(name) {
			g.logger.Debugw("column.removed", map[string]any{"column": name})
			continue
		}
		g.logger.Warnw("column.not_found", map[string]any{"column": name})
	}
}

func (g *Genie) SetRowCount(n int) error {
	if n < 0 {
		return &generators.ValidationError{Param: "row_count", Reason: fmt.Sprintf("must be >= 0, got %d", n)}
	}
	if n == g.rowCount {
		return nil
	}
	g.logger.Debugw("row_count.set", map[string]any{"from": g.rowCount, "to": n})
	g.rowCount = n
	return nil
}

func (g *Genie) RowCount() int { return g.rowCount }

// Columns returns a copy of the schema's columns in order.
func (g *Genie) Columns() []domain.Column { return g.schema.Columns() }

func (g *Genie) Schema() *domain.Schema { return domain.NewSchema(g.schema.Columns()...) }

func (g *Genie) Mode() domain.Mode { return g.mode }

func (g *Genie) SetMode(mode domain.Mode) error {
	m, err := domain.ParseMode(string(mode))
	if err != nil {
		return err
	}
	g.mode = m
	return nil
}

func (g *Genie) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataframe row counts: %d.\nColumns: ", g.rowCount)
	names := g.schema.Names()
	if len(names) == 0 {
		b.WriteString("-- No Columns added yet.")
		return b.String()
	}
	for _, name := range names {
		b.WriteString("\n|-- ")
		b.WriteString(name)
	}
	return b.String()
}

// Generate assembles fresh values for the current schema in the current mode.
func (g *Genie) Generate() (*exec.Output, error) {
	return g.assembler.Assemble(g.schema, g.rowCount, g.mode)
}

// Fingerprint hashes the schema and row count. Equal fingerprints mean
// equal generation settings, not equal data.
func (g *Genie) Fingerprint() (string, error) {
	return hashing.HashSchema(g.schema, g.rowCount)
}

// BuildFrame generates data and hands it to b in the shape matching the
// Genie's mode.
func BuildFrame[F any](g *Genie, b frame.Builder[F]) (F, error) {
	var zero F

	out, err := g.Generate()
	if err != nil {
		return zero, err
	}

	var f F
	if out.Mode == domain.ModeColumnMajor {
		f, err = b.FromColumns(out.Columns, out.Values)
	} else {
		f, err = b.FromRows(out.Columns, out.Rows)
	}
	if err != nil {
		return zero, fmt.Errorf("failed to build frame: %w", err)
	}

	fields := map[string]any{
		"rows":    out.NumRows(),
		"columns": len(out.Columns),
		"mode":    string(out.Mode),
	}
	if hash, err := g.Fingerprint(); err == nil {
		fields["schema_hash"] = hash
	}
	g.logger.Debugw("frame.created", fields)

	return f, nil
}
