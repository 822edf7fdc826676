// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"time"

	"marketplace/internal/api"
	"marketplace/internal/database"
	"marketplace/internal/model"
	"marketplace/internal/service"
	"marketplace/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const msgMissingFields = "Missing required fields"

var (
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
	issueAccessToken  = service.IssueAccessToken
	createUser        = store.CreateUser
	getUserByID       = store.GetUserByID
	getUserByEmail    = store.GetUserByEmail
	newID             = uuid.NewString
	timeNow           = time.Now
	uniqueViolationOf = database.UniqueViolation
)

// RegisterHandler 註冊新帳號
// @Summary     Register a user
// @Description 建立使用者並以 bcrypt 儲存密碼，回應不包含密碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "New account"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse "Missing required fields"
// @Failure     409  {object} api.ErrorResponse "Username or email already exists"
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgMissingFields})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err, msgMissingFields)})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("register: hash password: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Registration failed"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			ID:           newID(),
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    timeNow().UTC(),
		})
		if err != nil {
			if column, ok := uniqueViolationOf(err); ok {
				switch column {
				case "username":
					return c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Username already exists"})
				case "email":
					return c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already exists"})
				}
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Registration failed"})
			}
			c.Logger().Errorf("register: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Registration failed"})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
