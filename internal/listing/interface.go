package listing

import (
	"context"

	"wishlist-matching/internal/model"
)

// UseCase defines the business logic interface for the listing domain.
type UseCase interface {
	// Create persists a new listing and hands it off to the matching
	// pipeline. Matching runs in the background; its failures never
	// affect the created listing.
	Create(ctx context.Context, sc model.Scope, input CreateListingInput) (CreateListingOutput, error)

	// List returns published listings, newest first.
	List(ctx context.Context, sc model.Scope, input ListListingsInput) (ListListingsOutput, error)

	// Detail returns one listing by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailListingOutput, error)
}

// Matcher runs the matching pipeline against a freshly persisted
// listing. Implemented by the match domain.
type Matcher interface {
	ProcessListing(ctx context.Context, listing model.Listing) error
}
