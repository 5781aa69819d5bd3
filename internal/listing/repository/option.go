package repository

// CreateListingOptions holds the parameters for inserting a listing.
type CreateListingOptions struct {
	OwnerID     string
	Title       string
	Description string
	Categories  []string
	Location    string
}

// ListListingsOptions holds the parameters for listing listings.
type ListListingsOptions struct {
	Category string
	Limit    int
	Offset   int
}
