package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.ExecContext(context.Background(), "") })
	require.Panics(t, func() { db.QueryContext(context.Background(), "") })
	require.Panics(t, func() { db.QueryRowContext(context.Background(), "") })
	require.Panics(t, func() { db.PingContext(context.Background()) })
	require.NoError(t, db.Close())
	require.Equal(t, DriverSQLite, db.Driver())
	require.Nil(t, db.SQL())

	execCalled := false
	pingCalled := false
	closeCalled := false
	db.ExecFn = func(ctx context.Context, q string, args ...any) (sql.Result, error) {
		execCalled = true
		return nil, errors.New("e")
	}
	db.PingFn = func(ctx context.Context) error { pingCalled = true; return nil }
	db.CloseFn = func() error { closeCalled = true; return nil }
	db.DriverType = DriverPostgres

	_, err := db.ExecContext(context.Background(), "sql")
	require.Error(t, err)
	require.NoError(t, db.PingContext(context.Background()))
	require.NoError(t, db.Close())
	require.Equal(t, DriverPostgres, db.Driver())
	require.True(t, execCalled)
	require.True(t, pingCalled)
	require.True(t, closeCalled)
}

func TestDialect(t *testing.T) {
	require.Equal(t, DriverPostgres, DetectDriver("postgres://u:p@h/db"))
	require.Equal(t, DriverPostgres, DetectDriver(" PostgreSQL://u@h/db"))
	require.Equal(t, DriverSQLite, DetectDriver("file:marketplace.db"))
	require.Equal(t, DriverSQLite, DetectDriver("sqlite:///tmp/x.db"))
	require.Equal(t, DriverSQLite, DetectDriver("marketplace.db"))

	q := `SELECT a FROM t WHERE b = $1 AND (c LIKE $2 OR d LIKE $3)`
	require.Equal(t, `SELECT a FROM t WHERE b = ? AND (c LIKE ? OR d LIKE ?)`, DialectFor(DriverSQLite).Rebind(q))
	require.Equal(t, q, DialectFor(DriverPostgres).Rebind(q))
	require.Equal(t, DriverSQLite, DialectFor("unknown").Driver())
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t, "file:a.db?_pragma=busy_timeout(5000)&_time_format=sqlite", SQLiteDSN("file:a.db"))
	require.Equal(t, "/tmp/a.db?_pragma=busy_timeout(5000)&_time_format=sqlite", SQLiteDSN("sqlite:///tmp/a.db"))
	require.Equal(t, "a.db?_pragma=busy_timeout(5000)&_time_format=sqlite", SQLiteDSN("sqlite:a.db"))
	require.Equal(t, "file:a.db?mode=rwc&_pragma=busy_timeout(5000)&_time_format=sqlite", SQLiteDSN("file:a.db?mode=rwc"))
}

func TestOpen(t *testing.T) {
	t.Cleanup(func() { sqlOpen = sql.Open })

	db, err := Open(context.Background(), "file:"+filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	require.Equal(t, DriverSQLite, db.Driver())
	require.NotNil(t, db.SQL())
	require.NoError(t, db.PingContext(context.Background()))
	require.NoError(t, db.Close())

	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
	_, err = Open(context.Background(), "file:x.db")
	require.Error(t, err)
}

func TestConnRebindsQueries(t *testing.T) {
	db, err := Open(context.Background(), "file:"+filepath.Join(t.TempDir(), "conn.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ($1, $2)`, "a", "1")
	require.NoError(t, err)

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = $1`, "a").Scan(&v))
	require.Equal(t, "1", v)

	rows, err := db.QueryContext(ctx, `SELECT k FROM kv WHERE v = $1`, "1")
	require.NoError(t, err)
	defer rows.Close()
	require.True(t, rows.Next())
}
