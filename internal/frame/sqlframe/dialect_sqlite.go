package sqlframe

import (
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func init() {
	registerDialect(&dialect{
		driver:       "sqlite3",
		createPrefix: "CREATE TABLE",
		versionQuery: "SELECT sqlite_version()",
		placeholder:  questionMark,
		columnType: func(k columnKind) string {
			switch k {
			case kindInt, kindBool:
				return "INTEGER"
			case kindFloat:
				return "REAL"
			default:
				return "TEXT"
			}
		},
		convert: func(v any) any {
			switch val := v.(type) {
			case time.Time:
				return val.UTC().Format(time.RFC3339)
			case bool:
				if val {
					return 1
				}
				return 0
			default:
				return v
			}
		},
	}, "sqlite")
}
