package repository

import "errors"

// Coarse repository errors. Details are logged at the repository
// layer, not surfaced to callers.
var (
	ErrFailedToInsert = errors.New("failed to insert listing")
	ErrFailedToGet    = errors.New("failed to get listing")
	ErrFailedToList   = errors.New("failed to list listings")
)
