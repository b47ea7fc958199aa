// Package auth exchanges login credentials for a session token.
package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/token"
	"github.com/supuni9622/crm-application/users"
)

// Exchange trades credentials for a serialized session token.
type Exchange interface {
	Login(ctx context.Context, email, password string) (string, error)
}

var _ Exchange = (*MockExchange)(nil)

// MockExchange checks credentials against fixture accounts. It never touches
// the caller's session; storing the token is the caller's job.
type MockExchange struct {
	users  users.UserRepo
	issuer *token.Issuer
	delay  time.Duration
}

// MockExchangeOption defines a function type to modify the MockExchange instance.
type MockExchangeOption func(*MockExchange)

// WithDelay simulates a slow identity provider.
func WithDelay(d time.Duration) MockExchangeOption {
	return func(m *MockExchange) {
		m.delay = d
	}
}

func NewMockExchange(userRepo users.UserRepo, issuer *token.Issuer, options ...MockExchangeOption) (*MockExchange, error) {
	if userRepo == nil {
		return nil, errors.New("[NewMockExchange] user repo is required")
	}
	if issuer == nil {
		return nil, errors.New("[NewMockExchange] issuer is required")
	}
	m := &MockExchange{users: userRepo, issuer: issuer}
	for _, opt := range options {
		opt(m)
	}
	return m, nil
}

// Login returns a token for a matching account. Every credential failure is
// reported as ErrAuthenticationRejected without saying which part was wrong.
func (m *MockExchange) Login(ctx context.Context, email, password string) (string, error) {
	if err := m.wait(ctx); err != nil {
		return "", err
	}

	if err := ValidateCredentials(email, password); err != nil {
		return "", errors.Wrapf(crmerrors.ErrAuthenticationRejected, "[MockExchange Login] %v", err)
	}

	account, err := m.users.GetByEmail(email)
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("login for unknown account")
		return "", errors.Wrapf(crmerrors.ErrAuthenticationRejected, "[MockExchange Login] %v", UserNotFoundErr)
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return "", errors.Wrapf(crmerrors.ErrAuthenticationRejected, "[MockExchange Login] %v", UserPasswordsDontMatchErr)
	}

	signed, err := m.issuer.Issue(&account.User)
	if err != nil {
		return "", errors.Wrap(err, "[MockExchange Login] issue token")
	}
	return signed, nil
}

func (m *MockExchange) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
