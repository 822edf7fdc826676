package database

import (
	"regexp"
	"strings"
)

// DriverType identifies the SQL backend behind a DB.
type DriverType string

const (
	DriverSQLite   DriverType = "sqlite"
	DriverPostgres DriverType = "postgres"
)

// Dialect hides placeholder differences between backends. Queries are
// written with PostgreSQL placeholders ($1, $2, ...) and rebound per driver.
type Dialect interface {
	Driver() DriverType
	Rebind(query string) string
}

var pgPlaceholderRe = regexp.MustCompile(`\$\d+`)

type sqliteDialect struct{}

func (sqliteDialect) Driver() DriverType { return DriverSQLite }

// Rebind turns $N placeholders into ?. Each $N must appear exactly once and
// in ascending order.
func (sqliteDialect) Rebind(query string) string {
	return pgPlaceholderRe.ReplaceAllString(query, "?")
}

type postgresDialect struct{}

func (postgresDialect) Driver() DriverType { return DriverPostgres }

func (postgresDialect) Rebind(query string) string { return query }

// DialectFor returns the dialect of a driver; unknown drivers get SQLite.
func DialectFor(driver DriverType) Dialect {
	if driver == DriverPostgres {
		return postgresDialect{}
	}
	return sqliteDialect{}
}

// DetectDriver picks the backend from a DSN. postgres:// and postgresql://
// select PostgreSQL; everything else is treated as a SQLite file.
func DetectDriver(dsn string) DriverType {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}
