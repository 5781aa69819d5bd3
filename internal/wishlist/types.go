package wishlist

import "wishlist-matching/internal/model"

// CreateItemInput is the input for adding a wishlist item. The owner
// comes from the request scope.
type CreateItemInput struct {
	Name        string
	Description string
	Category    string // optional, must be a member of the closed category set
}

// CreateItemOutput is the result of adding a wishlist item.
type CreateItemOutput struct {
	Item model.WishlistItem
}

// ListItemsInput is the input for listing the caller's wishlist items.
type ListItemsInput struct {
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ListItemsOutput is the result of listing wishlist items.
type ListItemsOutput struct {
	Items []model.WishlistItem
	Total int
}

// UpdateItemInput is the input for a partial wishlist item update.
// Empty fields are left unchanged.
type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	Category    string
}

// UpdateItemOutput is the result of updating a wishlist item.
type UpdateItemOutput struct {
	Item model.WishlistItem
}

// DetailItemOutput is the result of fetching a single wishlist item.
type DetailItemOutput struct {
	Item model.WishlistItem
}
