package errors

import (
	"errors"
	"fmt"
)

// Common error types for the CRM dashboard
var (
	// Session errors. These never escape the session store's query methods;
	// they are normalized to "no session" there.
	ErrMalformedCredential = errors.New("malformed credential")
	ErrExpiredCredential   = errors.New("expired credential")

	// Authorization errors
	ErrNotAuthenticated       = errors.New("login required")
	ErrInsufficientRole       = errors.New("insufficient role")
	ErrAuthenticationRejected = errors.New("authentication rejected")

	// Data errors
	ErrRecordNotFound = errors.New("record not found")

	// Table errors
	ErrUnknownColumn  = errors.New("unknown column")
	ErrInvalidOrderBy = errors.New("invalid order_by")

	// General errors
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternal       = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
