package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"http error", echo.NewHTTPError(http.StatusUnauthorized, "Missing token"), http.StatusUnauthorized, `{"error":"Missing token"}`},
		{"not found", echo.ErrNotFound, http.StatusNotFound, `{"error":"Not Found"}`},
		{"non string message", echo.NewHTTPError(http.StatusBadRequest, map[string]int{"x": 1}), http.StatusBadRequest, `{"error":"Bad Request"}`},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			ErrorHandler(tc.err, c)
			require.Equal(t, tc.code, rec.Code)
			require.JSONEq(t, tc.body, rec.Body.String())
		})
	}

	t.Run("head has no body", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)
		ErrorHandler(echo.ErrNotFound, c)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("committed response is left alone", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, c.String(http.StatusOK, "done"))
		ErrorHandler(errors.New("late"), c)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "done", rec.Body.String())
	})
}
