package check

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid check configuration")
	ErrUnknownProperty = errors.New("unknown property")
)
