package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/model"
	"marketplace/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}

func TestExtractClaims(t *testing.T) {
	const secret = "testsecret"

	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, secret)
	requireStatus(t, err, http.StatusUnauthorized)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, secret)
	requireStatus(t, err, http.StatusUnauthorized)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, secret)
	requireStatus(t, err, http.StatusUnauthorized)

	tok, err := service.IssueAccessToken(secret, model.User{ID: "1", IsAdmin: true}, time.Minute)
	require.NoError(t, err)

	// secret disabled
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx, "")
	requireStatus(t, err, http.StatusUnauthorized)

	// valid token, scheme is case-insensitive
	ctx, _ = newContext("bearer " + tok)
	claims, err := extractClaims(ctx, secret)
	require.NoError(t, err)
	require.Equal(t, "1", claims.UserID)
	require.True(t, claims.IsAdmin)
}

func TestRequireAuth(t *testing.T) {
	const secret = "secret"
	tok, err := service.IssueAccessToken(secret, model.User{ID: "2"}, time.Minute)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(secret)(func(c echo.Context) error {
		called = true
		require.Equal(t, "2", Claims(c).UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(secret)(func(echo.Context) error { called = true; return nil })(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
	require.False(t, called)
	require.Nil(t, Claims(ctx))
}
