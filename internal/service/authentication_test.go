package service

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func minCostHash(t *testing.T, pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "other"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	u := &model.User{ID: "1", PasswordHash: minCostHash(t, "pw")}

	require.NoError(t, AuthenticateUser(u, "pw"))
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(nil, "pw"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(&model.User{}, ""), ErrInvalidCredentials)

	u.IsBanned = true
	require.ErrorIs(t, AuthenticateUser(u, "pw"), ErrUserBanned)
	// a wrong password never reveals the ban
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := IssueAccessToken("", model.User{}, time.Minute)
	require.ErrorIs(t, err, ErrNoSecret)

	now := time.Now().Truncate(time.Second)
	timeNow = func() time.Time { return now }
	tok, err := IssueAccessToken("s", model.User{ID: "5", IsAdmin: true}, time.Minute)
	require.NoError(t, err)

	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, "5", claims.UserID)
	require.True(t, claims.IsAdmin)
	require.Equal(t, now.Add(time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := VerifyAccessToken("", "abc")
	require.ErrorIs(t, err, ErrNoSecret)

	_, err = VerifyAccessToken("s", "invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken("s", tokNone)
	require.Error(t, err)

	other, err := IssueAccessToken("other", model.User{ID: "1"}, time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken("s", other)
	require.Error(t, err)

	expired, err := IssueAccessToken("s", model.User{ID: "1"}, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken("s", expired)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)

	noUser, err := IssueAccessToken("s", model.User{}, time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken("s", noUser)
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("s", "whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, err := IssueAccessToken("s", model.User{ID: "3"}, time.Minute)
	require.NoError(t, err)
	claims, err := VerifyAccessToken("s", tok)
	require.NoError(t, err)
	require.Equal(t, "3", claims.UserID)
	require.False(t, claims.IsAdmin)
}
