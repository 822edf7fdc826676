package users

import (
	"errors"
	"net/http"

	"marketplace/internal/api"
	"marketplace/internal/database"
	"marketplace/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers     = store.ListUsers
	getUserByID   = store.GetUserByID
	setUserBanned = store.SetUserBanned
)

// @Summary     List users
// @Description 列出所有使用者 (不含密碼)，依建立時間排序
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     string true "User ID"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse "User not found"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := getUserByID(c.Request().Context(), db, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Ban a user
// @Description 設定停權旗標，被停權的使用者無法登入
// @Tags        users
// @Produce     json
// @Param       id  path     string true "User ID"
// @Success     200 {object} api.SuccessResponse
// @Failure     404 {object} api.ErrorResponse "User not found"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id}/ban [put]
func BanUserHandler(db database.DB) echo.HandlerFunc {
	return banHandler(db, true, "User banned successfully")
}

// @Summary     Unban a user
// @Tags        users
// @Produce     json
// @Param       id  path     string true "User ID"
// @Success     200 {object} api.SuccessResponse
// @Failure     404 {object} api.ErrorResponse "User not found"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id}/unban [put]
func UnbanUserHandler(db database.DB) echo.HandlerFunc {
	return banHandler(db, false, "User unbanned successfully")
}

func banHandler(db database.DB, banned bool, message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := setUserBanned(c.Request().Context(), db, c.Param("id"), banned)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.Success(message))
	}
}
