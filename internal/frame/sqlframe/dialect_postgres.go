package sqlframe

import (
	_ "github.com/lib/pq"
)

func init() {
	registerDialect(&dialect{
		driver:       "postgres",
		createPrefix: "CREATE TEMP TABLE",
		versionQuery: "SHOW server_version",
		placeholder:  dollar,
		columnType: func(k columnKind) string {
			switch k {
			case kindInt:
				return "BIGINT"
			case kindFloat:
				return "DOUBLE PRECISION"
			case kindTime:
				return "TIMESTAMPTZ"
			case kindBool:
				return "BOOLEAN"
			default:
				return "TEXT"
			}
		},
	}, "postgresql", "pg")
}
