package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestUniqueViolationPostgres(t *testing.T) {
	col, ok := UniqueViolation(fmt.Errorf("CreateUser: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}))
	require.True(t, ok)
	require.Equal(t, "email", col)

	col, ok = UniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	require.True(t, ok)
	require.Equal(t, "username", col)

	col, ok = UniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})
	require.True(t, ok)
	require.Empty(t, col)

	_, ok = UniqueViolation(&pgconn.PgError{Code: "23502"})
	require.False(t, ok)

	_, ok = UniqueViolation(errors.New("boom"))
	require.False(t, ok)
	_, ok = UniqueViolation(nil)
	require.False(t, ok)
}

func TestUniqueViolationSQLite(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, RunMigrations(db))
	ctx := context.Background()

	insert := func(id, username, email string) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
			id, username, email, "h")
		return err
	}
	require.NoError(t, insert("a", "bob", "bob@x.com"))

	col, ok := UniqueViolation(insert("b", "bob", "other@x.com"))
	require.True(t, ok)
	require.Equal(t, "username", col)

	col, ok = UniqueViolation(insert("c", "robert", "bob@x.com"))
	require.True(t, ok)
	require.Equal(t, "email", col)

	_, err := db.ExecContext(ctx, `INSERT INTO users (id) VALUES ($1)`, "d")
	require.Error(t, err)
	_, ok = UniqueViolation(err)
	require.False(t, ok)
}
