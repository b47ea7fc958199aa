package auth

import "errors"

var (
	UserNotFoundErr           = errors.New("user not found")
	UserPasswordsDontMatchErr = errors.New("user passwords not matched")
)
