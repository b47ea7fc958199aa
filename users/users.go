package users

import (
	"fmt"
	"strings"
)

// Role is the coarse authorization level carried by a session token.
type Role string

const (
	RoleUser  Role = "user"  // Any authenticated dashboard user
	RoleAdmin Role = "admin" // Can reach settings and subscription views
)

// ParseRole maps a claim value onto a known role. Matching is exact.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Satisfies reports whether a holder of r meets the required role.
// Every authenticated role meets a user requirement; only admin meets admin.
func (r Role) Satisfies(required Role) bool {
	if !r.Valid() {
		return false
	}
	switch required {
	case RoleUser:
		return true
	case RoleAdmin:
		return r == RoleAdmin
	}
	return false
}

// User is the read-only identity derived from a valid session token.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Account is a login identity known to the mock login exchange.
type Account struct {
	User     `yaml:",inline"`
	Password string `json:"-" yaml:"password"` // Demo fixture only, never serialized to clients
}

// Initials returns up to two upper-case initials for display.
func (u *User) Initials() string {
	return Initials(u.Name)
}

// Initials takes the first letter of the first and last words, or the first
// two letters of a single word.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch {
	case len(parts) == 0:
		return ""
	case len(parts) >= 2:
		first := []rune(parts[0])
		last := []rune(parts[len(parts)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
	r := []rune(parts[0])
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}
