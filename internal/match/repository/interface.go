package repository

import (
	"context"

	"wishlist-matching/internal/model"
)

// Repository is the interface for match and push-token data access.
type Repository interface {
	// CreateIfAbsent inserts a match unless one already exists for the
	// (wishlist item, listing) pair. The unique constraint on the pair
	// is the source of truth; a lost race comes back as created=false
	// with the existing row.
	CreateIfAbsent(ctx context.Context, opt CreateMatchOptions) (m model.Match, created bool, err error)

	// GetMatch retrieves a single match by ID. Returns a zero-value
	// match (ID == "") when not found.
	GetMatch(ctx context.Context, id string) (model.Match, error)

	// ListMatchedItemIDs returns the wishlist item IDs that already
	// have a match with the listing.
	ListMatchedItemIDs(ctx context.Context, listingID string) ([]string, error)

	// ListUnsent returns matches whose notification has not been sent,
	// oldest first.
	ListUnsent(ctx context.Context, limit int) ([]model.Match, error)

	// ListByOwner returns matches for items owned by the given user,
	// joined with item name and listing title, plus the total count.
	ListByOwner(ctx context.Context, opt ListByOwnerOptions) ([]MatchRow, int, error)

	// MarkNotified flips notification_sent false to true. Returns
	// transitioned=false when the flag was already set.
	MarkNotified(ctx context.Context, id string) (transitioned bool, err error)

	// GetPushToken returns the user's push token, or "" when the user
	// has no registered device.
	GetPushToken(ctx context.Context, userID string) (string, error)

	// UpsertPushToken stores or replaces the user's push token.
	UpsertPushToken(ctx context.Context, userID, token string) error
}
