// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/log"
)

// Config holds every setting the service reads at startup.
type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseURL   string `env:"DATABASE_URL" envDefault:"file:marketplace.db"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadSize string `env:"MAX_UPLOAD_SIZE" envDefault:"5M"`
	SeedDemoUsers bool   `env:"SEED_DEMO_USERS" envDefault:"true"`

	// MigrateRollback reverts every migration and exits without serving.
	MigrateRollback bool `env:"MIGRATE_ROLLBACK" envDefault:"false"`

	// Access tokens are only issued when JWTSecret is set.
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Redis 為選配，未設定位址時停用登入節流
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginLockout     time.Duration `env:"LOGIN_LOCKOUT" envDefault:"15m"`

	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
}

// Load 讀取 (可選的) .env 檔並將環境變數解析為 Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values env tags cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if strings.TrimSpace(c.UploadDir) == "" {
		return errors.New("UPLOAD_DIR must not be empty")
	}
	if c.LoginMaxAttempts <= 0 {
		return fmt.Errorf("invalid LOGIN_MAX_ATTEMPTS: %d", c.LoginMaxAttempts)
	}
	if c.LoginLockout <= 0 {
		return fmt.Errorf("invalid LOGIN_LOCKOUT: %s", c.LoginLockout)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("invalid JWT_TTL: %s", c.JWTTTL)
	}
	if n, err := bytes.Parse(c.MaxUploadSize); err != nil || n <= 0 {
		return fmt.Errorf("invalid MAX_UPLOAD_SIZE: %q", c.MaxUploadSize)
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}
	return nil
}

// LogLvl maps LOG_LEVEL onto the echo logger's levels.
func (c *Config) LogLvl() log.Lvl {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return log.INFO
}

// AllowOrigins splits CORS_ALLOW_ORIGINS into trimmed, non-empty entries.
func (c *Config) AllowOrigins() []string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
