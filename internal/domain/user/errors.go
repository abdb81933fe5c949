package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserInactive     = errors.New("user account is deactivated")
	ErrEmailExists      = errors.New("email already registered")
	ErrSelfDeleteDenied = errors.New("you cannot delete your own account")
	ErrBusinessMismatch = errors.New("resource belongs to another business")
)
