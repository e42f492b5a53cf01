package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when a login or a password change is
	// rejected. It does not say which part of the credentials was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrHashPassword is returned when a password could not be hashed.
	ErrHashPassword = errors.New("failed to hash password")
)
