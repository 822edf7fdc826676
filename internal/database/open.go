package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOpen is swapped in tests.
var sqlOpen = sql.Open

// Open 依 DSN 選擇 SQLite 或 PostgreSQL 建立連線，並以 ping 驗證
func Open(ctx context.Context, dsn string) (DB, error) {
	driver := DetectDriver(dsn)

	driverName, source := "pgx", dsn
	if driver == DriverSQLite {
		driverName, source = "sqlite", SQLiteDSN(dsn)
	}

	sqlDB, err := sqlOpen(driverName, source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite && strings.Contains(source, ":memory:") {
		// 每條連線都會拿到各自空白的 in-memory 資料庫
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return New(sqlDB, driver), nil
}

// SQLiteDSN 正規化 SQLite 路徑並附加 pragma，讓連線池中每條連線都套用
func SQLiteDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite:"):
		dsn = strings.TrimPrefix(dsn, "sqlite:")
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_time_format=sqlite"
}
