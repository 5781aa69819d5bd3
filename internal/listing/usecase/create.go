package usecase

import (
	"context"
	"strings"

	"wishlist-matching/internal/listing"
	"wishlist-matching/internal/listing/repository"
	"wishlist-matching/internal/model"
)

// Create persists a new listing and hands it off to the matching
// pipeline in the background.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input listing.CreateListingInput) (listing.CreateListingOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return listing.CreateListingOutput{}, listing.ErrEmptyTitle
	}
	if !uc.validCategories(input.Categories) {
		return listing.CreateListingOutput{}, listing.ErrInvalidCategory
	}

	created, err := uc.repo.CreateListing(ctx, repository.CreateListingOptions{
		OwnerID:     sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Categories:  input.Categories,
		Location:    strings.TrimSpace(input.Location),
	})
	if err != nil {
		uc.l.Errorf(ctx, "listing.usecase.Create: %v", err)
		return listing.CreateListingOutput{}, err
	}

	uc.triggerMatching(ctx, created)

	return listing.CreateListingOutput{Listing: created}, nil
}

// triggerMatching runs the matching pipeline for the listing in the
// background. The run is detached from the request lifetime; failures
// are logged, never returned. Unsent notifications are picked up by
// the retry sweep.
func (uc *implUseCase) triggerMatching(ctx context.Context, l model.Listing) {
	if uc.matcher == nil {
		return
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), matchTimeout)
	go func() {
		defer cancel()
		if err := uc.matcher.ProcessListing(bg, l); err != nil {
			uc.l.Errorf(bg, "listing.usecase.triggerMatching: listing %s: %v", l.ID, err)
		}
	}()
}
