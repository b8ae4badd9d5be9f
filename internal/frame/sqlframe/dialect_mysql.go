package sqlframe

import (
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

func init() {
	registerDialect(&dialect{
		driver:       "mysql",
		createPrefix: "CREATE TEMPORARY TABLE",
		dropPrefix:   "DROP TEMPORARY TABLE IF EXISTS",
		versionQuery: "SELECT VERSION()",
		placeholder:  questionMark,
		columnType: func(k columnKind) string {
			switch k {
			case kindInt:
				return "BIGINT"
			case kindFloat:
				return "DOUBLE"
			case kindTime:
				return "DATETIME"
			case kindBool:
				return "BOOLEAN"
			default:
				return "TEXT"
			}
		},
		convert: utcTime,
		quote: func(name string) string {
			return "`" + strings.ReplaceAll(name, "`", "``") + "`"
		},
	}, "mariadb")
}
