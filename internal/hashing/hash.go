package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/mmrzaf/blockgenie/internal/domain"
)

// HashSchema returns a stable SHA-256 fingerprint of a schema and row count.
// Column order is significant; parameter key order is not.
func HashSchema(schema *domain.Schema, rowCount int) (string, error) {
	canonical := canonicalizeSchema(schema, rowCount)
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("failed to encode schema: %w", err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func canonicalizeSchema(schema *domain.Schema, rowCount int) map[string]any {
	cols := schema.Columns()
	columns := make([]map[string]any, len(cols))
	for i, col := range cols {
		colMap := map[string]any{
			"name":     col.Name,
			"category": string(col.Category),
		}
		if len(col.Params) > 0 {
			colMap["params"] = canonicalizeParams(col.Params)
		}
		columns[i] = colMap
	}

	return map[string]any{
		"rows":    rowCount,
		"columns": columns,
	}
}

// canonicalizeParams returns params as sorted key/value pairs so typed slices
// ([]int vs []any) and times in different zones hash the same.
func canonicalizeParams(params map[string]any) [][2]any {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]any{k, canonicalizeValue(params[k])})
	}
	return out
}

func canonicalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case map[string]any:
		return canonicalizeParams(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = canonicalizeValue(rv.Index(i).Interface())
		}
		return items
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return canonicalizeValue(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return v
	}
}
