package usecase

import (
	"context"

	"wishlist-matching/internal/model"
	"wishlist-matching/internal/wishlist"
	repo "wishlist-matching/internal/wishlist/repository"
)

// Delete soft-deactivates an item owned by the scoped user. The row
// and its match history stay; only future matching is suppressed.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return wishlist.ErrItemNotFound
	}

	if err := uc.repo.DeactivateItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeactivateItem: %v", err)
		return err
	}

	uc.l.Infof(ctx, "wishlist: deactivated item %s for user %s", id, sc.UserID)
	return nil
}
