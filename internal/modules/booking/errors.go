package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrStudioNotFound  = errors.New("studio not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRequestNotFound = errors.New("booking request not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrConflict        = errors.New("booking conflict")
	ErrInvalidAction   = errors.New("invalid action")
	ErrAlreadyDecided  = errors.New("booking request already decided")
)
