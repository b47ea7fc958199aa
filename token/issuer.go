// Package token issues session tokens for the demo login exchange.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/supuni9622/crm-application/users"
)

// Issuer creates session tokens carrying the identity claims the dashboard reads.
type Issuer struct {
	signer  Signer
	ttl     time.Duration
	nowTime func() time.Time
}

// IssuerOption defines a function type to modify the Issuer instance.
type IssuerOption func(*Issuer)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) IssuerOption {
	return func(i *Issuer) {
		i.nowTime = nowFunc
	}
}

func NewIssuer(signer Signer, ttl time.Duration, options ...IssuerOption) (*Issuer, error) {
	if signer == nil {
		return nil, errors.New("[NewIssuer] signer is required")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("[NewIssuer] ttl must be positive, got %s", ttl)
	}
	i := &Issuer{signer: signer, ttl: ttl, nowTime: time.Now}
	for _, opt := range options {
		opt(i)
	}
	return i, nil
}

// Issue creates a token for user expiring after the issuer's ttl.
func (i *Issuer) Issue(user *users.User) (string, error) {
	return i.IssueUntil(user, i.nowTime().Add(i.ttl))
}

// IssueUntil creates a token with an explicit expiry.
func (i *Issuer) IssueUntil(user *users.User, expiresAt time.Time) (string, error) {
	if user == nil {
		return "", errors.New("[Issuer Issue] user is required")
	}
	claims := jwt.MapClaims{
		"id":    user.ID,             // Subject identifier
		"sub":   user.ID,             // Same subject, registered claim form
		"email": user.Email,          // Display identity
		"name":  user.Name,           // Display identity
		"role":  string(user.Role),   // Authorization level
		"iat":   i.nowTime().Unix(),  // Issued At
		"exp":   expiresAt.Unix(),    // Expiry in seconds since epoch
		"jti":   uuid.New().String(), // Unique token ID
	}

	signed, err := i.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "[Issuer Issue] sign")
	}
	return signed, nil
}
