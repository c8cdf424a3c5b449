package auth

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)
