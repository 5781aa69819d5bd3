package match

import "errors"

// Domain-specific errors for the match package.
var (
	ErrMatchNotFound = errors.New("match not found")
	ErrEmptyToken    = errors.New("push token is empty")
)
