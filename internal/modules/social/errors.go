package social

import "errors"

var (
	ErrValidation       = errors.New("followerId and followedId are required")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrFollowerNotFound = errors.New("follower not found")
	ErrTargetNotFound   = errors.New("follow target not found")
	ErrUserNotFound     = errors.New("user not found")
)
