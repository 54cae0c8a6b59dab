package middlewares

import "errors"

var (
	ErrEmptyField       = errors.New("username must be filled")
	ErrInvalidEmail     = errors.New("email is invalid")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
)
