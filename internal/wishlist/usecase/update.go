package usecase

import (
	"context"

	"wishlist-matching/internal/model"
	"wishlist-matching/internal/wishlist"
	repo "wishlist-matching/internal/wishlist/repository"
)

// Update applies a partial update to an item owned by the scoped user.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input wishlist.UpdateItemInput) (wishlist.UpdateItemOutput, error) {
	if !uc.validCategory(input.Category) {
		return wishlist.UpdateItemOutput{}, wishlist.ErrInvalidCategory
	}

	// Ownership check before touching the row
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return wishlist.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return wishlist.UpdateItemOutput{}, wishlist.ErrItemNotFound
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return wishlist.UpdateItemOutput{}, err
	}

	return wishlist.UpdateItemOutput{Item: item}, nil
}
