package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
)

// Claims is the payload of a session token.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims

	role users.Role
}

// Decode parses a token without verifying its signature. It fails with
// ErrMalformedCredential when the token cannot be parsed or names an unknown role.
func Decode(raw string) (*Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.Wrap(crmerrors.ErrMalformedCredential, "[session Decode] empty token")
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, errors.Wrapf(crmerrors.ErrMalformedCredential, "[session Decode] %v", err)
	}
	role, err := users.ParseRole(claims.Role)
	if err != nil {
		return nil, errors.Wrapf(crmerrors.ErrMalformedCredential, "[session Decode] %v", err)
	}
	claims.role = role
	return claims, nil
}

// Expired reports whether now is at or past the expiry instant. A token
// without an expiry never counts as live.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}

// Check returns ErrExpiredCredential for an expired token.
func (c *Claims) Check(now time.Time) error {
	if c.Expired(now) {
		return errors.Wrap(crmerrors.ErrExpiredCredential, "[session Check]")
	}
	return nil
}

// User is the identity view of the claims.
func (c *Claims) User() *users.User {
	return &users.User{
		ID:    c.UserID,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.role,
	}
}
