package model

import "time"

// Listing is a published garage-sale entry. Listings are created by
// the sale-publication flow and are read-only input to the matcher.
type Listing struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Categories  []string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
