//go:build cgo && ((darwin && (amd64 || arm64)) || (linux && (amd64 || arm64 || riscv64)))

package sqlframe

import (
	_ "github.com/marcboeker/go-duckdb"
)

func init() {
	registerDialect(&dialect{
		driver:       "duckdb",
		createPrefix: "CREATE TEMP TABLE",
		versionQuery: "SELECT version()",
		placeholder:  questionMark,
		columnType: func(k columnKind) string {
			switch k {
			case kindInt:
				return "BIGINT"
			case kindFloat:
				return "DOUBLE"
			case kindTime:
				return "TIMESTAMPTZ"
			case kindBool:
				return "BOOLEAN"
			default:
				return "VARCHAR"
			}
		},
		convert: utcTime,
	}, "duck")
}
