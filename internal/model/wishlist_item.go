package model

import "time"

// WishlistItem is a user-authored description of a sought-after item,
// optionally tagged with one category from the closed category set.
// Items are soft-deactivated rather than deleted: Active=false
// suppresses future matching, existing matches are kept for history.
type WishlistItem struct {
	ID          string
	OwnerID     string
	Name        string
	Description string // optional
	Category    string // optional, one tag from the closed set
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
