// Package gate decides what a protected view shows for the current session.
package gate

import (
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
)

const (
	LoginPath         = "/login"
	UnauthorizedPath  = "/unauthorized"
	DefaultReturnPath = "/dashboard"
	FromParam         = "from"
)

// State is the gate's view of a protected route.
type State int

const (
	Checking        State = iota // Session not yet determined, show a loading placeholder
	Unauthenticated              // No valid session, send to login
	Forbidden                    // Valid session without the required role
	Authorized                   // Render the protected content
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case Authorized:
		return "authorized"
	}
	return "unknown"
}

// Snapshot is what the gate knows about the session at decision time.
type Snapshot struct {
	Determined bool
	User       *users.User
}

// Decide maps a snapshot and a required role onto a gate state.
func Decide(snap Snapshot, required users.Role) State {
	switch {
	case !snap.Determined:
		return Checking
	case snap.User == nil:
		return Unauthenticated
	case !snap.User.Role.Satisfies(required):
		return Forbidden
	}
	return Authorized
}

// SessionSource is the part of the session store the gate reads.
type SessionSource interface {
	CurrentUser() (*users.User, bool)
}

// Outcome is a terminal gate decision.
type Outcome struct {
	State    State
	Redirect string      // Empty unless the view must navigate away
	User     *users.User // Set when Authorized
}

// Err returns the error a non-interactive caller reports for the outcome.
func (o Outcome) Err() error {
	switch o.State {
	case Unauthenticated:
		return errors.WithStack(crmerrors.ErrNotAuthenticated)
	case Forbidden:
		return errors.WithStack(crmerrors.ErrInsufficientRole)
	}
	return nil
}

// Gate guards one view. It starts in Checking and settles on exactly one
// terminal state per evaluation.
type Gate struct {
	source   SessionSource
	required users.Role
	logger   zerolog.Logger

	mu      sync.Mutex
	outcome Outcome
}

// Option defines a function type to modify the Gate instance.
type Option func(*Gate)

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

func New(source SessionSource, required users.Role, options ...Option) *Gate {
	g := &Gate{
		source:   source,
		required: required,
		logger:   log.Logger,
		outcome:  Outcome{State: Checking},
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// State returns the current state without evaluating.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome.State
}

// Evaluate determines the session and settles the gate. Once settled, further
// calls return the same outcome until Reset.
func (g *Gate) Evaluate(requestedPath string) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome.State != Checking {
		return g.outcome
	}

	user, ok := g.source.CurrentUser()
	snap := Snapshot{Determined: true}
	if ok {
		snap.User = user
	}

	out := Outcome{State: Decide(snap, g.required)}
	switch out.State {
	case Unauthenticated:
		out.Redirect = LoginRedirect(requestedPath)
	case Forbidden:
		out.Redirect = UnauthorizedPath
	case Authorized:
		out.User = user
	}

	g.logger.Debug().
		Str("path", requestedPath).
		Str("required", string(g.required)).
		Stringer("state", out.State).
		Msg("gate decision")

	g.outcome = out
	return out
}

// Reset returns the gate to Checking, e.g. after the session changed.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outcome = Outcome{State: Checking}
}

// LoginRedirect is the login location carrying the originally requested path.
func LoginRedirect(requestedPath string) string {
	if requestedPath == "" {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{FromParam: {requestedPath}}.Encode()
}

// SafeReturnPath returns from when it is a local absolute path, otherwise
// the dashboard.
func SafeReturnPath(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") ||
		strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return DefaultReturnPath
	}
	u, err := url.Parse(from)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultReturnPath
	}
	if u.Path == LoginPath {
		return DefaultReturnPath
	}
	return from
}
