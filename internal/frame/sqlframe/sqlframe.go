// Package sqlframe materializes generated data as a SQL table so it can be
// queried. SQLite frames live in a private in-memory database by default.
// PostgreSQL, MySQL and DuckDB frames are temporary tables bound to one
// dedicated connection and vanish with it.
package sqlframe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mmrzaf/blockgenie/internal/frame"
	"github.com/mmrzaf/blockgenie/internal/logging"
	"github.com/mmrzaf/blockgenie/internal/validation"
)

// TablePlaceholder is replaced by the frame's table name in Query.
const TablePlaceholder = "{{frame}}"

// maxParams stays under the PostgreSQL bind parameter limit.
const maxParams = 65535

const defaultBatchSize = 500

type Builder struct {
	dialect   *dialect
	dsn       string
	batchSize int
	logger    *logging.Logger
	open      func(driver, dsn string) (*sql.DB, error)
}

var _ frame.Builder[*Frame] = (*Builder)(nil)

type Option func(*Builder)

// WithBatchSize caps the number of rows per INSERT statement.
func WithBatchSize(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithDatabase overrides the database of a PostgreSQL DSN.
func WithDatabase(name string) Option {
	return func(b *Builder) {
		if b.dialect.driver == "postgres" {
			b.dsn = WithPostgresDatabase(b.dsn, name)
		}
	}
}

func NewBuilder(driver, dsn string, logger *logging.Logger, opts ...Option) (*Builder, error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}
	if d.driver == "sqlite3" && strings.TrimSpace(dsn) == "" {
		dsn = ":memory:"
	}
	if logger == nil {
		logger = logging.Nop()
	}
	b := &Builder{
		dialect:   d,
		dsn:       dsn,
		batchSize: defaultBatchSize,
		logger:    logger.WithComponent("sqlframe"),
		open:      sql.Open,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Builder) FromRows(columns []string, rows [][]any) (*Frame, error) {
	return b.Build(context.Background(), columns, rows)
}

func (b *Builder) FromColumns(columns []string, values map[string][]any) (*Frame, error) {
	rows, err := frame.RowsFromColumns(columns, values)
	if err != nil {
		return nil, err
	}
	return b.Build(context.Background(), columns, rows)
}

// Build creates a new table and loads rows into it. On failure nothing is
// left behind.
func (b *Builder) Build(ctx context.Context, columns []string, rows [][]any) (*Frame, error) {
	if err := validation.ValidateSQLColumns(columns); err != nil {
		return nil, err
	}
	values, err := frame.ColumnsFromRows(columns, rows)
	if err != nil {
		return nil, err
	}
	kinds := make([]columnKind, len(columns))
	for i, col := range columns {
		kinds[i] = kindOf(values[col])
	}

	db, err := b.open(b.dialect.driver, b.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", b.dialect.driver, err)
	}
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", b.dialect.driver, err)
	}

	id := uuid.New()
	f := &Frame{
		id:      id.String(),
		table:   "frame_" + strings.ReplaceAll(id.String(), "-", ""),
		columns: append([]string(nil), columns...),
		rows:    len(rows),
		dialect: b.dialect,
		db:      db,
		conn:    conn,
		logger:  b.logger,
	}

	if _, err := conn.ExecContext(ctx, b.dialect.createTableSQL(f.table, columns, kinds)); err != nil {
		f.release()
		return nil, fmt.Errorf("failed to create table %s: %w", f.table, err)
	}
	if err := b.insert(ctx, f, rows); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to load table %s: %w", f.table, err)
	}

	b.logger.Debugw("sqlframe.created", map[string]any{
		"table":  f.table,
		"driver": b.dialect.driver,
		"dsn":    RedactDSN(b.dsn),
		"rows":   f.rows,
	})
	return f, nil
}

func (b *Builder) insert(ctx context.Context, f *Frame, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	batch := b.batchSize
	if limit := maxParams / len(f.columns); batch > limit {
		batch = limit
	}

	tx, err := f.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for start := 0; start < len(rows); start += batch {
		end := min(start+batch, len(rows))
		chunk := rows[start:end]

		args := make([]any, 0, len(chunk)*len(f.columns))
		for _, row := range chunk {
			for _, v := range row {
				args = append(args, b.dialect.convert(v))
			}
		}
		if _, err := tx.ExecContext(ctx, b.dialect.insertSQL(f.table, f.columns, len(chunk)), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Frame is a generated dataset stored in a SQL table. Close drops it.
type Frame struct {
	id      string
	table   string
	columns []string
	rows    int
	dialect *dialect
	db      *sql.DB
	conn    *sql.Conn
	logger  *logging.Logger
}

// Result is a fully read query result.
type Result struct {
	Columns []string
	Rows    [][]any
}

func (f *Frame) ID() string { return f.id }

func (f *Frame) Table() string { return f.table }

func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

func (f *Frame) NumRows() int { return f.rows }

func (f *Frame) Driver() string { return f.dialect.driver }

// Query runs query against the frame's connection. Occurrences of
// TablePlaceholder are replaced with the frame's table name.
func (f *Frame) Query(ctx context.Context, query string) (*Result, error) {
	if f.conn == nil {
		return nil, fmt.Errorf("frame %s is closed", f.id)
	}
	query = strings.ReplaceAll(query, TablePlaceholder, f.table)

	rows, err := f.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	res := &Result{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		dest := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range dest {
			ptrs[i] = &dest[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range dest {
			if b, ok := v.([]byte); ok {
				dest[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, dest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// ServerVersion reports the database server version.
func (f *Frame) ServerVersion(ctx context.Context) (string, error) {
	if f.conn == nil {
		return "", fmt.Errorf("frame %s is closed", f.id)
	}
	var version string
	if err := f.conn.QueryRowContext(ctx, f.dialect.versionQuery).Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}

// Close drops the frame's table and releases its connection. It is safe to
// call more than once.
func (f *Frame) Close() error {
	if f.conn == nil {
		return nil
	}
	_, dropErr := f.conn.ExecContext(context.Background(), f.dialect.dropTableSQL(f.table))
	if dropErr != nil {
		f.logger.Warnw("sqlframe.drop_failed", map[string]any{"table": f.table, "error": dropErr.Error()})
	}
	if err := f.release(); err != nil {
		return err
	}
	return dropErr
}

func (f *Frame) release() error {
	var err error
	if f.conn != nil {
		err = f.conn.Close()
		f.conn = nil
	}
	if f.db != nil {
		if cerr := f.db.Close(); err == nil {
			err = cerr
		}
		f.db = nil
	}
	return err
}
