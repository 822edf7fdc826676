// File: internal/handler/health.go
package handler

import (
	"net/http"

	"marketplace/internal/api"
	"marketplace/internal/cache"
	"marketplace/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler pings the database and, when configured, Redis.
// @Summary     Health check
// @Description 資料庫 (及已設定的 Redis) 可 ping 通時回傳 ok
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.PingContext(ctx); err != nil {
			c.Logger().Errorf("health: database ping: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
		}
		if cch != nil {
			if err := cch.Ping(ctx).Err(); err != nil {
				c.Logger().Errorf("health: cache ping: %v", err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
	}
}
