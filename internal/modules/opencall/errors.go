package opencall

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("open call not found")
	ErrInvalidPoster  = errors.New("invalid poster id or type")
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyApplied = errors.New("already applied to this open call")
)
