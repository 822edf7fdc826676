package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
	Down() error
}

var (
	iofsNewFn            = iofs.New
	sqliteWithInstanceFn = func(db *sql.DB) (dbdriver.Driver, error) {
		return sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	}
	pgxWithInstanceFn = func(db *sql.DB) (dbdriver.Driver, error) {
		return pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	}
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// newMigrator builds a migrate instance for the driver behind db. The
// migrate instance is never closed here: closing it would close db too.
func newMigrator(db DB) (migrateInstance, error) {
	var (
		driver dbdriver.Driver
		name   string
		dir    string
		err    error
	)
	switch db.Driver() {
	case DriverSQLite:
		name, dir = "sqlite", "migrations/sqlite"
		driver, err = sqliteWithInstanceFn(db.SQL())
	case DriverPostgres:
		name, dir = "pgx5", "migrations/postgres"
		driver, err = pgxWithInstanceFn(db.SQL())
	default:
		return nil, fmt.Errorf("unsupported driver %q", db.Driver())
	}
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	sourceDriver, err := iofsNewFn(fs.FS(migrationsFS), dir)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, name, driver)
	if err != nil {
		return nil, fmt.Errorf("migrate init: %w", err)
	}
	return m, nil
}

// RunMigrations 嵌入並執行 SQL migration (up all)，已是最新版本不視為錯誤
func RunMigrations(db DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// RollbackAll 回滾所有 migration (down all)
func RollbackAll(db DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}
