package usecase

import (
	"context"

	"wishlist-matching/internal/listing"
	"wishlist-matching/internal/listing/repository"
	"wishlist-matching/internal/model"
)

// List returns published listings, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input listing.ListListingsInput) (listing.ListListingsOutput, error) {
	listings, total, err := uc.repo.ListListings(ctx, repository.ListListingsOptions{
		Category: input.Category,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "listing.usecase.List: %v", err)
		return listing.ListListingsOutput{}, err
	}

	return listing.ListListingsOutput{
		Listings: listings,
		Total:    total,
	}, nil
}

// Detail returns one listing by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (listing.DetailListingOutput, error) {
	found, err := uc.repo.GetOneListing(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "listing.usecase.Detail: %v", err)
		return listing.DetailListingOutput{}, err
	}
	if found.ID == "" {
		return listing.DetailListingOutput{}, listing.ErrListingNotFound
	}

	return listing.DetailListingOutput{Listing: found}, nil
}
