package database

import (
	"context"
	"database/sql"
)

// DB is the storage handle injected into stores and handlers.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
	Driver() DriverType
	SQL() *sql.DB
}

// Conn wraps *sql.DB and rebinds every query for its dialect.
type Conn struct {
	db      *sql.DB
	dialect Dialect
}

// New wraps an already opened *sql.DB.
func New(db *sql.DB, driver DriverType) *Conn {
	return &Conn{db: db, dialect: DialectFor(driver)}
}

func (c *Conn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.db.ExecContext(ctx, c.dialect.Rebind(query), args...)
}

func (c *Conn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, c.dialect.Rebind(query), args...)
}

func (c *Conn) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return c.db.QueryRowContext(ctx, c.dialect.Rebind(query), args...)
}

func (c *Conn) PingContext(ctx context.Context) error { return c.db.PingContext(ctx) }

func (c *Conn) Close() error { return c.db.Close() }

func (c *Conn) Driver() DriverType { return c.dialect.Driver() }

func (c *Conn) SQL() *sql.DB { return c.db }

// FakeDB lets tests script individual DB calls.
type FakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn    func(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowFn func(ctx context.Context, query string, args ...any) *sql.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func() error
	DriverType DriverType
}

func (f *FakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, query, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) PingContext(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

func (f *FakeDB) Driver() DriverType {
	if f.DriverType == "" {
		return DriverSQLite
	}
	return f.DriverType
}

func (f *FakeDB) SQL() *sql.DB { return nil }
