package usecase

import (
	"context"

	"wishlist-matching/internal/match"
	"wishlist-matching/internal/match/repository"
	"wishlist-matching/internal/model"
)

// ListByOwner returns matches found for the scoped user's wishlist
// items, newest first.
func (uc *implUseCase) ListByOwner(ctx context.Context, sc model.Scope, input match.ListMatchesInput) (match.ListMatchesOutput, error) {
	rows, total, err := uc.repo.ListByOwner(ctx, repository.ListByOwnerOptions{
		OwnerID:    sc.UserID,
		UnsentOnly: input.UnsentOnly,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "match.usecase.ListByOwner: %v", err)
		return match.ListMatchesOutput{}, err
	}

	matches := make([]match.MatchDetail, len(rows))
	for i, row := range rows {
		matches[i] = match.MatchDetail{
			Match:        row.Match,
			ItemName:     row.ItemName,
			ListingTitle: row.ListingTitle,
		}
	}
	return match.ListMatchesOutput{
		Matches: matches,
		Total:   total,
	}, nil
}
