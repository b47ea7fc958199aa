package session

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/supuni9622/crm-application/users"
)

// Event is a change to the stored credential.
type Event int

const (
	EventCredentialSet Event = iota + 1
	EventCredentialCleared
)

func (e Event) String() string {
	switch e {
	case EventCredentialSet:
		return "credential_set"
	case EventCredentialCleared:
		return "credential_cleared"
	}
	return "unknown"
}

// Observer is called after the credential changes.
type Observer func(Event)

// Store owns the credential held in a Storage slot.
type Store struct {
	storage Storage
	nowTime func() time.Time
	logger  zerolog.Logger

	mu        sync.Mutex
	observers map[int]Observer
	nextID    int
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// WithLogger replaces the global logger.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store over the given slot.
func New(storage Storage, options ...StoreOption) *Store {
	s := &Store{
		storage:   storage,
		nowTime:   time.Now,
		logger:    log.Logger,
		observers: make(map[int]Observer),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// SetCredential persists the token as the current credential. It is not validated.
func (s *Store) SetCredential(token string) error {
	if err := s.storage.Save(token); err != nil {
		return errors.Wrap(err, "[Store SetCredential] save")
	}
	s.notify(EventCredentialSet)
	return nil
}

// Credential returns the stored token verbatim.
func (s *Store) Credential() (string, bool) {
	token, ok, err := s.storage.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("credential slot unreadable, treating as logged out")
		return "", false
	}
	return token, ok
}

// ClearCredential removes any stored token. Clearing a slot known to be empty
// sends no notification.
func (s *Store) ClearCredential() error {
	_, present, err := s.storage.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("credential slot unreadable before clear")
		present = true
	}
	if err := s.storage.Remove(); err != nil {
		return errors.Wrap(err, "[Store ClearCredential] remove")
	}
	if present {
		s.notify(EventCredentialCleared)
	}
	return nil
}

// IsSessionValid reports whether a decodable, unexpired token is stored.
func (s *Store) IsSessionValid() bool {
	_, ok := s.validClaims()
	return ok
}

// CurrentUser returns the identity of a valid session.
func (s *Store) CurrentUser() (*users.User, bool) {
	claims, ok := s.validClaims()
	if !ok {
		return nil, false
	}
	return claims.User(), true
}

// HasRole reports whether the current user satisfies the required role.
func (s *Store) HasRole(required users.Role) bool {
	user, ok := s.CurrentUser()
	if !ok {
		return false
	}
	return user.Role.Satisfies(required)
}

// Subscribe registers an observer and returns a function removing it.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) validClaims() (*Claims, bool) {
	raw, ok := s.Credential()
	if !ok {
		return nil, false
	}

	claims, err := Decode(raw)
	if err != nil {
		s.logger.Debug().Err(err).Msg("clearing malformed credential")
		if clearErr := s.ClearCredential(); clearErr != nil {
			s.logger.Warn().Err(clearErr).Msg("failed to clear malformed credential")
		}
		return nil, false
	}

	// Expired tokens stay in the slot; they simply never count as a session.
	if err := claims.Check(s.nowTime()); err != nil {
		return nil, false
	}
	return claims, true
}

func (s *Store) notify(e Event) {
	s.mu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	for _, o := range observers {
		o(e)
	}
}
