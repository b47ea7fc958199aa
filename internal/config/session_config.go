package config

import "time"

type SessionConfig interface {
	GetTokenSecret() string
	GetTokenTTL() time.Duration
	GetCookieSecure() bool
	GetStatePath() string
}

type Session struct {
	// TokenSecret only makes issued mock tokens well-formed. Nothing verifies it.
	TokenSecret  string        `env:"TOKEN_SECRET" envDefault:"crm-dev-secret"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	StatePath    string        `env:"STATE_PATH" envDefault:"./data/crm.db"`
}

var _ SessionConfig = Session{}

func (s Session) GetTokenSecret() string {
	return s.TokenSecret
}

func (s Session) GetTokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.TokenTTL
}

func (s Session) GetCookieSecure() bool {
	return s.CookieSecure
}

// GetStatePath is where the CLI keeps its persisted credential slot.
func (s Session) GetStatePath() string {
	return s.StatePath
}
