package wishlist

import "errors"

// Domain-specific errors for the wishlist package.
var (
	ErrEmptyName       = errors.New("item name is empty")
	ErrInvalidCategory = errors.New("category is not in the allowed set")
	ErrItemNotFound    = errors.New("wishlist item not found")
)
