package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRateLimited        = errors.New("too many failed login attempts, try again later")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidSession     = errors.New("session is no longer valid")
	ErrSessionRevoked     = errors.New("session has been revoked")
)
