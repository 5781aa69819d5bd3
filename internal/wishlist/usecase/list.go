package usecase

import (
	"context"

	"wishlist-matching/internal/model"
	"wishlist-matching/internal/wishlist"
	repo "wishlist-matching/internal/wishlist/repository"
)

// List returns the scoped user's wishlist items.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input wishlist.ListItemsInput) (wishlist.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		OwnerID:    sc.UserID,
		ActiveOnly: input.ActiveOnly,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return wishlist.ListItemsOutput{}, err
	}

	return wishlist.ListItemsOutput{Items: items, Total: total}, nil
}

// Detail returns one wishlist item owned by the scoped user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (wishlist.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return wishlist.DetailItemOutput{}, err
	}
	if item.ID == "" {
		return wishlist.DetailItemOutput{}, wishlist.ErrItemNotFound
	}

	return wishlist.DetailItemOutput{Item: item}, nil
}
