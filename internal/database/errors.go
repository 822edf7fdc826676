package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

// UniqueViolation reports whether err is a unique-constraint failure and,
// if so, which user column ("username" or "email") it names. The column is
// empty when the constraint cannot be attributed.
func UniqueViolation(err error) (column string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}
		return constraintColumn(pgErr.ConstraintName), true
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		msg := sqliteErr.Error()
		if sqliteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT || !strings.Contains(msg, "UNIQUE constraint failed") {
			return "", false
		}
		return constraintColumn(msg), true
	}
	return "", false
}

// constraintColumn matches both "users_username_key" and
// "UNIQUE constraint failed: users.username".
func constraintColumn(s string) string {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "username"):
		return "username"
	case strings.Contains(s, "email"):
		return "email"
	}
	return ""
}
