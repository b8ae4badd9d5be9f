package sqlframe

import (
	"net/url"
	"strings"
)

// RedactDSN masks passwords in URL and keyword/value DSNs. DSNs with
// neither form (such as SQLite paths) are masked entirely, except the
// in-memory database.
func RedactDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" || dsn == ":memory:" {
		return dsn
	}

	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		if u.User != nil {
			u.User = url.UserPassword(u.User.Username(), "****")
		}
		q := u.Query()
		for _, k := range []string{"password", "pass", "pwd"} {
			if q.Has(k) {
				q.Set(k, "****")
			}
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	parts := strings.Fields(dsn)
	redacted := false
	for i := range parts {
		l := strings.ToLower(parts[i])
		if strings.HasPrefix(l, "password=") || strings.HasPrefix(l, "pwd=") || strings.HasPrefix(l, "pass=") {
			parts[i] = parts[i][:strings.IndexByte(parts[i], '=')+1] + "****"
			redacted = true
		}
	}
	if redacted {
		return strings.Join(parts, " ")
	}
	return "****"
}

// WithPostgresDatabase points a PostgreSQL DSN at another database.
func WithPostgresDatabase(dsn, database string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" || database == "" {
		return dsn
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		u.Path = "/" + database
		return u.String()
	}
	parts := strings.Fields(dsn)
	for i := range parts {
		if strings.HasPrefix(strings.ToLower(parts[i]), "dbname=") {
			parts[i] = "dbname=" + database
			return strings.Join(parts, " ")
		}
	}
	return strings.Join(append(parts, "dbname="+database), " ")
}
