// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/api"
	"marketplace/internal/database"
	"marketplace/internal/service"
	"marketplace/internal/store"

	"github.com/labstack/echo/v4"
)

// TokenConfig enables access tokens in the login response. An empty Secret
// disables them.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// LoginHandler 驗證 email 與密碼
// @Summary     Log in
// @Description 驗證 email 與密碼；密碼正確後才檢查是否停權。啟用 token 時回應包含 access_token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "Credentials"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse "Missing email or password"
// @Failure     401  {object} api.ErrorResponse "Invalid email or password"
// @Failure     403  {object} api.ErrorResponse "Your account has been banned"
// @Failure     429  {object} api.ErrorResponse "Too many failed login attempts"
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, throttle *service.LoginThrottle, tokens TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing email or password"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing email or password"})
		}

		ctx := c.Request().Context()

		// cache 錯誤時放行
		blocked, err := throttle.Blocked(ctx, req.Email)
		if err != nil {
			c.Logger().Warnf("login: throttle: %v", err)
		}
		if blocked {
			return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Too many failed login attempts"})
		}

		user, err := getUserByEmail(ctx, db, req.Email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
		}

		switch err := authenticateUser(user, req.Password); {
		case errors.Is(err, service.ErrUserBanned):
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Your account has been banned"})
		case err != nil:
			if err := throttle.Fail(ctx, req.Email); err != nil {
				c.Logger().Warnf("login: throttle: %v", err)
			}
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		}

		if err := throttle.Reset(ctx, req.Email); err != nil {
			c.Logger().Warnf("login: throttle: %v", err)
		}

		resp := api.LoginResponse{UserResponse: api.NewUserResponse(user)}
		if tokens.Secret != "" {
			token, err := issueAccessToken(tokens.Secret, *user, tokens.TTL)
			if err != nil {
				c.Logger().Errorf("login: issue token: %v", err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
			}
			resp.AccessToken = token
		}
		return c.JSON(http.StatusOK, resp)
	}
}
