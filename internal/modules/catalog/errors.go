package catalog

import "errors"

var ErrStudioNotFound = errors.New("studio not found")
