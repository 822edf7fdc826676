// File: internal/store/user.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	"marketplace/internal/database"
	"marketplace/internal/model"
)

const userColumns = `id, username, email, password_hash, is_admin, is_banned, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.IsBanned,
		&u.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+userColumns+`
		 FROM users ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 新增使用者，ID 與 CreatedAt 由呼叫端指定；
// 唯一鍵衝突會包裝後回傳，可用 database.UniqueViolation 判斷欄位
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, is_admin, is_banned, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
		u.IsBanned,
		u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func SetUserBanned(ctx context.Context, db database.DB, userID string, banned bool) error {
	res, err := db.ExecContext(ctx,
		`UPDATE users SET is_banned = $1
		 WHERE id = $2`,
		banned,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetUserBanned: %w", err)
	}
	return requireAffected("SetUserBanned", res)
}

func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
