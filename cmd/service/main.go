// @title        Marketplace API
// @version      1.0
// @description  二手市集後端 API 文件：帳號、商品、分類與圖片上傳
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/internal/api"
	"marketplace/internal/cache"
	"marketplace/internal/config"
	"marketplace/internal/database"
	"marketplace/internal/handler/auth"
	"marketplace/internal/middleware"
	"marketplace/internal/router"
	"marketplace/internal/service"
	"marketplace/internal/upload"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "marketplace/docs" // swag output

	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	openDB          = database.Open
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	seedCategories  = database.SeedCategories
	seedDemoUsers   = database.SeedDemoUsers
	hashPassword    = service.HashPassword
	newRedisClient  = cache.NewRedisClient
	newStorage      = upload.NewStorage
	startServer     = serve
	exitFunc        = os.Exit
)

// serve 啟動服務並阻塞，收到 SIGINT/SIGTERM 後等待進行中的請求結束再關閉
func serve(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		e.Logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLvl())
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.AllowOrigins()}))
	e.Use(echomw.BodyLimit(cfg.MaxUploadSize))
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	e := newEcho(cfg)

	db, err := openDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	e.Logger.Infof("database driver: %s", db.Driver())

	if cfg.MigrateRollback {
		if err := rollbackAllFn(db); err != nil {
			return fmt.Errorf("rollback migrations: %w", err)
		}
		e.Logger.Warn("all migrations rolled back, not serving")
		return nil
	}

	if err := runMigrationsFn(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := seedCategories(ctx, db); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if cfg.SeedDemoUsers {
		hash, err := hashPassword(database.DemoPassword)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}
		if err := seedDemoUsers(ctx, db, hash); err != nil {
			return fmt.Errorf("seed demo users: %w", err)
		}
	}

	var (
		cch      cache.Cache
		throttle *service.LoginThrottle
	)
	if cfg.RedisEnabled() {
		cch, err = newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer cch.Close()
		throttle = service.NewLoginThrottle(cch, cfg.LoginMaxAttempts, cfg.LoginLockout)
	} else {
		e.Logger.Warn("REDIS_ADDR not set, login throttling disabled")
	}

	storage, err := newStorage(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("upload dir: %w", err)
	}
	e.Logger.Infof("uploads stored in %s", storage.Dir())

	if cfg.JWTSecret == "" {
		e.Logger.Warn("JWT_SECRET not set, login will not issue access tokens")
	}

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    cch,
		Throttle: throttle,
		Storage:  storage,
		Tokens:   auth.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL},
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
