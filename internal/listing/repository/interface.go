package repository

import (
	"context"

	"wishlist-matching/internal/model"
)

// Repository is the interface for listing data access.
type Repository interface {
	CreateListing(ctx context.Context, opt CreateListingOptions) (model.Listing, error)

	// GetOneListing retrieves a single listing by ID. Returns a
	// zero-value listing (ID == "") when not found.
	GetOneListing(ctx context.Context, id string) (model.Listing, error)

	// ListListings returns a paginated list and the total count.
	ListListings(ctx context.Context, opt ListListingsOptions) ([]model.Listing, int, error)
}
