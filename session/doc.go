// Package session holds the current credential token and answers
// authentication and authorization questions about it.
//
// Every query fails closed: a missing, undecodable or expired token is "no
// session", and an undecodable token is also removed from its slot. Decode
// failures are never returned to callers of IsSessionValid, CurrentUser or
// HasRole.
package session
