package usecase

import (
	"context"
	"strings"

	"wishlist-matching/internal/model"
	"wishlist-matching/internal/wishlist"
	repo "wishlist-matching/internal/wishlist/repository"
)

// Create adds a wishlist item owned by the scoped user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input wishlist.CreateItemInput) (wishlist.CreateItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return wishlist.CreateItemOutput{}, wishlist.ErrEmptyName
	}
	if !uc.validCategory(input.Category) {
		return wishlist.CreateItemOutput{}, wishlist.ErrInvalidCategory
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		OwnerID:     sc.UserID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return wishlist.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "wishlist: created item %s for user %s", item.ID, sc.UserID)
	return wishlist.CreateItemOutput{Item: item}, nil
}
