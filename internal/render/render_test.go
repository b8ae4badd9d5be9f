package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	testHeader = []string{"id", "score", "created_at", "name"}
	testRows   = [][]any{
		{int64(1), 0.5, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "Ada Lovelace"},
		{int64(2), 1.25, "2024-02-03", "Grace Hopper"},
	}
)

func format(t *testing.T, name string) string {
	t.Helper()
	f, err := Lookup(name)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Format(testHeader, testRows, &buf))
	return buf.String()
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "table", "yaml"}, Names())
	_, err := Lookup("xml")
	assert.Error(t, err)
}

func TestCSV(t *testing.T) {
	out := format(t, "csv")
	assert.Equal(t,
		"id,score,created_at,name\n"+
			"1,0.5,2024-01-02T03:04:05Z,Ada Lovelace\n"+
			"2,1.25,2024-02-03,Grace Hopper\n",
		out)
}

func TestJSON_KeepsColumnOrder(t *testing.T) {
	out := format(t, "json")
	assert.Less(t, strings.Index(out, `"id"`), strings.Index(out, `"score"`))
	assert.Less(t, strings.Index(out, `"created_at"`), strings.Index(out, `"name"`))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "2024-01-02T03:04:05Z", decoded[0]["created_at"])
	assert.EqualValues(t, 2, decoded[1]["id"])
}

func TestYAML(t *testing.T) {
	out := format(t, "yaml")
	assert.True(t, strings.HasPrefix(out, "- id: 1\n  score: 0.5\n"), out)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Grace Hopper", decoded[1]["name"])
}

func TestTable(t *testing.T) {
	out := format(t, "table")
	assert.Contains(t, out, "created_at")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "2024-01-02T03:04:05Z")
}

func TestFormat_RejectsRaggedRows(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewJSON().Format([]string{"a"}, [][]any{{1, 2}}, &buf))
	assert.Error(t, NewYAML().Format([]string{"a"}, [][]any{{1, 2}}, &buf))
}
