package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "file:marketplace.db", cfg.DatabaseURL)
	require.Equal(t, "uploads", cfg.UploadDir)
	require.Equal(t, "5M", cfg.MaxUploadSize)
	require.True(t, cfg.SeedDemoUsers)
	require.False(t, cfg.MigrateRollback)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
	require.Equal(t, 5, cfg.LoginMaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.LoginLockout)
	require.False(t, cfg.RedisEnabled())
	require.Equal(t, []string{"*"}, cfg.AllowOrigins())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/market")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SEED_DEMO_USERS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddr)
	require.Equal(t, "postgres://u:p@localhost:5432/market", cfg.DatabaseURL)
	require.True(t, cfg.RedisEnabled())
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, time.Hour, cfg.JWTTTL)
	require.False(t, cfg.SeedDemoUsers)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins())
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("REDIS_DB", "bad")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("REDIS_DB", "0")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "0")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("LOG_LEVEL", "chatty")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOGIN_LOCKOUT", "nope")
	_, err = Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		DatabaseURL:      "file:x.db",
		UploadDir:        "uploads",
		LoginMaxAttempts: 1,
		LoginLockout:     time.Minute,
		JWTTTL:           time.Minute,
		LogLevel:         "info",
	}
	require.NoError(t, base.Validate())

	c := base
	c.DatabaseURL = " "
	require.Error(t, c.Validate())

	c = base
	c.UploadDir = ""
	require.Error(t, c.Validate())

	c = base
	c.JWTTTL = 0
	require.Error(t, c.Validate())
}

func TestValidateUploadSizeAndLogLevel(t *testing.T) {
	base := Config{
		DatabaseURL:      "file:x.db",
		UploadDir:        "uploads",
		MaxUploadSize:    "5M",
		LoginMaxAttempts: 1,
		LoginLockout:     time.Minute,
		JWTTTL:           time.Minute,
		LogLevel:         "WARN",
	}
	require.NoError(t, base.Validate())
	require.Equal(t, log.WARN, base.LogLvl())

	for _, size := range []string{"", "big", "0"} {
		c := base
		c.MaxUploadSize = size
		require.Error(t, c.Validate(), size)
	}

	c := base
	c.LogLevel = "trace"
	require.Error(t, c.Validate())
	require.Equal(t, log.INFO, c.LogLvl())
}
