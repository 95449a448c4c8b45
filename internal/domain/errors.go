package domain

import "errors"

// Domain errors raised by the core and mapped to HTTP statuses at the API
// boundary. Anything not listed here is treated as an internal error.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrParentNotFound     = errors.New("parent calculation not found")
	ErrDivisionByZero     = errors.New("cannot divide by zero")
	ErrInvalidOperation   = errors.New("invalid operation")
)
