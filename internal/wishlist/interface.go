package wishlist

import (
	"context"

	"wishlist-matching/internal/model"
)

// UseCase defines the business logic interface for the wishlist domain.
type UseCase interface {
	// Create adds a wishlist item owned by the scoped user.
	Create(ctx context.Context, sc model.Scope, input CreateItemInput) (CreateItemOutput, error)

	// List returns the scoped user's wishlist items.
	List(ctx context.Context, sc model.Scope, input ListItemsInput) (ListItemsOutput, error)

	// Detail returns one wishlist item owned by the scoped user.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailItemOutput, error)

	// Update applies a partial update to an item owned by the scoped user.
	Update(ctx context.Context, sc model.Scope, input UpdateItemInput) (UpdateItemOutput, error)

	// Delete soft-deactivates an item owned by the scoped user. Existing
	// matches are kept; future matching is suppressed.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
