// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"marketplace/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// NewSQLite opens a migrated SQLite file under t.TempDir with the fixed
// categories seeded. The handle is closed on cleanup.
func NewSQLite(t testing.TB) database.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedCategories(ctx, db); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	return db
}

// NewSeededSQLite is NewSQLite plus the demo users (johndoe, janedoe,
// admin), all with database.DemoPassword.
func NewSeededSQLite(t testing.TB) database.DB {
	t.Helper()
	db := NewSQLite(t)
	if err := database.SeedDemoUsers(context.Background(), db, HashPassword(t, database.DemoPassword)); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	return db
}

// HashPassword hashes with the minimum bcrypt cost to keep tests fast.
func HashPassword(t testing.TB, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}
