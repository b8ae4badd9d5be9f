package sqlframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, kindInt, kindOf([]any{nil, int64(1)}))
	assert.Equal(t, kindFloat, kindOf([]any{1.5}))
	assert.Equal(t, kindTime, kindOf([]any{time.Now()}))
	assert.Equal(t, kindBool, kindOf([]any{true}))
	assert.Equal(t, kindText, kindOf([]any{"x"}))
	assert.Equal(t, kindText, kindOf(nil))
}

func TestDialect_MySQLQuoting(t *testing.T) {
	d, err := lookupDialect("MariaDB")
	require.NoError(t, err)

	assert.Equal(t, "CREATE TEMPORARY TABLE t (`a` BIGINT, `b` DATETIME)",
		d.createTableSQL("t", []string{"a", "b"}, []columnKind{kindInt, kindTime}))
	assert.Equal(t, "INSERT INTO t (`a`, `b`) VALUES (?, ?), (?, ?)", d.insertSQL("t", []string{"a", "b"}, 2))
	assert.Equal(t, "DROP TEMPORARY TABLE IF EXISTS t", d.dropTableSQL("t"))
}

func TestDialect_SQLiteConvert(t *testing.T) {
	d, err := lookupDialect("sqlite")
	require.NoError(t, err)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	assert.Equal(t, "2024-01-02T02:04:05Z", d.convert(ts))
	assert.Equal(t, 1, d.convert(true))
	assert.Equal(t, "CREATE TABLE t (\"a\" REAL)", d.createTableSQL("t", []string{"a"}, []columnKind{kindFloat}))
}
