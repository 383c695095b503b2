package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the login does not match the
	// configured admin credential.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken is returned for missing, malformed or expired
	// session tokens.
	ErrInvalidToken = errors.New("auth: invalid session token")
)
