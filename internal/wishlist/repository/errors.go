package repository

import "errors"

// Coarse repository errors. Details are logged at the repository
// layer, not surfaced to callers.
var (
	ErrFailedToInsert = errors.New("failed to insert wishlist item")
	ErrFailedToGet    = errors.New("failed to get wishlist item")
	ErrFailedToList   = errors.New("failed to list wishlist items")
	ErrFailedToUpdate = errors.New("failed to update wishlist item")
)
