package middleware

import (
	"errors"
	"net/http"

	"marketplace/internal/api"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every unhandled error as {"error": "..."} so
// framework errors (unknown route, body too large, bad token) share the
// shape handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, api.ErrorResponse{Error: msg})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
