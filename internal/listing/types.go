package listing

import "wishlist-matching/internal/model"

// CreateListingInput is the input for publishing a listing. The seller
// comes from the request scope.
type CreateListingInput struct {
	Title       string
	Description string
	Categories  []string
	Location    string
}

// CreateListingOutput is the result of publishing a listing.
type CreateListingOutput struct {
	Listing model.Listing
}

// ListListingsInput is the input for browsing listings.
type ListListingsInput struct {
	Category string
	Limit    int
	Offset   int
}

// ListListingsOutput is the result of browsing listings.
type ListListingsOutput struct {
	Listings []model.Listing
	Total    int
}

// DetailListingOutput is the result of fetching a single listing.
type DetailListingOutput struct {
	Listing model.Listing
}
