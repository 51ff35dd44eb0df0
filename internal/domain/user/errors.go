package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrPhoneExists       = errors.New("phone already registered")
	ErrAlreadyTerminated = errors.New("user already terminated")
	ErrOwnerRequired     = errors.New("owner position required")
)
