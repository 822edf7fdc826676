package auth

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/internal/api"
	"marketplace/internal/database"
	"marketplace/internal/service"
	"marketplace/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
	getUserByID = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	newID = uuid.NewString
	timeNow = time.Now
	uniqueViolationOf = database.UniqueViolation
}

// fastHash keeps bcrypt cheap in tests.
func fastHash(t *testing.T) {
	t.Cleanup(restore)
	hashPassword = func(pw string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		return string(h), err
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newJSONCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
