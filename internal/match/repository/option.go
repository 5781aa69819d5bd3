package repository

import "wishlist-matching/internal/model"

// CreateMatchOptions holds the parameters for inserting a match.
type CreateMatchOptions struct {
	WishlistItemID string
	ListingID      string
	Confidence     model.Confidence
	Reason         string
}

// ListByOwnerOptions holds the parameters for listing a user's matches.
type ListByOwnerOptions struct {
	OwnerID    string
	UnsentOnly bool
	Limit      int
	Offset     int
}

// MatchRow is a match joined with the item name and listing title.
type MatchRow struct {
	Match        model.Match
	ItemName     string
	ListingTitle string
}
