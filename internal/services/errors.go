package services

import "errors"

// Failure taxonomy shared by the services. Handlers map these onto HTTP
// statuses with errors.Is; anything else is treated as an internal error.
var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOrder       = errors.New("invalid order data")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
)
