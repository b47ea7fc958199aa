package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/supuni9622/crm-application/token"
	"github.com/supuni9622/crm-application/users"
)

func TestIssuer_Issue(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	issuer, err := token.NewIssuer(token.NewHMACSigner("secret"), time.Hour,
		token.WithNowTime(func() time.Time { return now }))
	require.NoError(t, err)

	raw, err := issuer.Issue(&users.User{ID: "u-1", Email: "a@example.com", Name: "Ann Admin", Role: users.RoleAdmin})
	require.NoError(t, err)

	parsed, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte("secret"), nil },
		jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, "u-1", claims["id"])
	require.Equal(t, "admin", claims["role"])
	require.Equal(t, float64(now.Add(time.Hour).Unix()), claims["exp"])
	require.NotEmpty(t, claims["jti"])
}

func TestNewIssuer_Validation(t *testing.T) {
	_, err := token.NewIssuer(nil, time.Hour)
	require.Error(t, err)

	_, err = token.NewIssuer(token.NewHMACSigner("s"), 0)
	require.Error(t, err)
}

func TestIssuer_RequiresUser(t *testing.T) {
	issuer, err := token.NewIssuer(token.NewHMACSigner("s"), time.Hour)
	require.NoError(t, err)
	_, err = issuer.Issue(nil)
	require.Error(t, err)
}
