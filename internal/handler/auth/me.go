// File: internal/handler/auth/me.go
package auth

import (
	"errors"
	"net/http"

	"marketplace/internal/api"
	"marketplace/internal/database"
	"marketplace/internal/middleware"
	"marketplace/internal/store"

	"github.com/labstack/echo/v4"
)

// MeHandler 回傳 bearer token 對應的使用者
// @Summary     Current user
// @Description 以登入取得的 access token 查詢目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /auth/me [get]
func MeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.Claims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		}
		if err != nil {
			c.Logger().Errorf("me: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
