package repository

import "errors"

// Coarse repository errors. Details are logged at the repository
// layer, not surfaced to callers.
var (
	ErrFailedToInsert = errors.New("failed to insert match")
	ErrFailedToGet    = errors.New("failed to get match")
	ErrFailedToList   = errors.New("failed to list matches")
	ErrFailedToUpdate = errors.New("failed to update match")
	ErrFailedToken    = errors.New("failed to access push token")
)
