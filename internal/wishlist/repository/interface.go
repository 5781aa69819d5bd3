package repository

import (
	"context"

	"wishlist-matching/internal/model"
)

// Repository is the interface for wishlist item data access.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.WishlistItem, error)

	// GetOneItem retrieves a single item by the provided filters (AND
	// condition). Returns a zero-value item (ID == "") when not found.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.WishlistItem, error)

	// ListItems returns a paginated list and the total count.
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.WishlistItem, int, error)

	// ListActiveItems returns every active item across all users, for
	// the matching pipeline.
	ListActiveItems(ctx context.Context) ([]model.WishlistItem, error)

	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.WishlistItem, error)

	// DeactivateItem sets active=false. Match rows are never touched.
	DeactivateItem(ctx context.Context, id string) error
}
