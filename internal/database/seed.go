package database

import (
	"context"
	"fmt"
	"time"
)

// 啟動時寫入的固定分類
var seedCategories = []struct{ ID, Name string }{
	{"1", "Electronics"},
	{"2", "Furniture"},
	{"3", "Clothing"},
	{"4", "Vehicles"},
	{"5", "Sports Equipment"},
	{"6", "Toys & Games"},
	{"7", "Books"},
	{"8", "Home & Garden"},
}

var seedUsers = []struct {
	ID, Username, Email string
	IsAdmin             bool
}{
	{"1", "johndoe", "john@example.com", false},
	{"2", "janedoe", "jane@example.com", false},
	{"3", "admin", "admin@example.com", true},
}

// DemoPassword is the plain password of every seeded demo user.
const DemoPassword = "password123"

// SeedCategories 寫入固定分類，已存在的資料列略過
func SeedCategories(ctx context.Context, db DB) error {
	for _, c := range seedCategories {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			c.ID, c.Name,
		); err != nil {
			return fmt.Errorf("SeedCategories %s: %w", c.Name, err)
		}
	}
	return nil
}

// SeedDemoUsers 以指定的密碼哈希寫入示範帳號；id、username 或 email 已存在者略過
func SeedDemoUsers(ctx context.Context, db DB, passwordHash string) error {
	now := time.Now().UTC()
	for _, u := range seedUsers {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (id, username, email, password_hash, is_admin, is_banned, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT DO NOTHING`,
			u.ID, u.Username, u.Email, passwordHash, u.IsAdmin, false, now,
		); err != nil {
			return fmt.Errorf("SeedDemoUsers %s: %w", u.Username, err)
		}
	}
	return nil
}
