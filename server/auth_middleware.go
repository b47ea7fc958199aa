package server

import (
	"context"
	"net/http"

	"github.com/supuni9622/crm-application/gate"
	"github.com/supuni9622/crm-application/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUser stores the authorized user
	ContextKeyUser ContextKey = "user"
)

// RequireRole gates a route on the session cookie. Requests without a valid
// session are sent to login with the requested location preserved; requests
// lacking the role are sent to the unauthorized page.
func (s *Server) RequireRole(required users.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			g := gate.New(s.sessionFor(w, r), required)
			out := g.Evaluate(r.URL.RequestURI())

			switch out.State {
			case gate.Authorized:
				ctx := context.WithValue(r.Context(), ContextKeyUser, out.User)
				next(w, r.WithContext(ctx))
			case gate.Unauthenticated, gate.Forbidden:
				redirectSuccess(w, r, out.Redirect)
			default:
				// Evaluate always settles; a Checking outcome means the session could not be read.
				writeJSONError(w, http.StatusServiceUnavailable, "session unavailable")
			}
		}
	}
}

// userFrom returns the user placed in the context by RequireRole.
func userFrom(ctx context.Context) (*users.User, bool) {
	u, ok := ctx.Value(ContextKeyUser).(*users.User)
	return u, ok && u != nil
}
