package auth

import "errors"

var (
	ErrUserExists         = errors.New("user already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
