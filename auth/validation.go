package auth

import (
	"fmt"
	"strings"
)

// ValidateCredentials performs the shape checks on login input done before
// any account lookup.
func ValidateCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}

	// Basic email format validation
	at := strings.LastIndex(email, "@")
	if at <= 0 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("invalid email format")
	}

	if password == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}
