package sqldoc

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/matheus3301/chatsync/internal/schema"
)

type dialect struct {
	name     string
	driver   schema.Driver
	nowQuery string
	// placeholders rewrites ? markers into the dialect's form.
	placeholders func(string) string
	retryable    func(error) bool
}

var sqliteDialect = dialect{
	name:         "sqlite3",
	driver:       schema.SQLite,
	nowQuery:     `SELECT CAST((julianday('now') - 2440587.5) * 86400000 AS INTEGER)`,
	placeholders: func(q string) string { return q },
	retryable:    func(error) bool { return false },
}

var postgresDialect = dialect{
	name:         "postgres",
	driver:       schema.Postgres,
	nowQuery:     `SELECT (EXTRACT(EPOCH FROM clock_timestamp()) * 1000)::BIGINT`,
	placeholders: dollarPlaceholders,
	retryable: func(err error) bool {
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) {
			return false
		}
		// serialization_failure, deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	},
}

func dollarPlaceholders(q string) string {
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
