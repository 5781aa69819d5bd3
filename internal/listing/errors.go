package listing

import "errors"

// Domain-specific errors for the listing package.
var (
	ErrEmptyTitle      = errors.New("listing title is empty")
	ErrInvalidCategory = errors.New("category is not in the allowed set")
	ErrListingNotFound = errors.New("listing not found")
)
