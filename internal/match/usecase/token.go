package usecase

import (
	"context"
	"strings"

	"wishlist-matching/internal/match"
	"wishlist-matching/internal/model"
)

// RegisterPushToken stores the scoped user's device push token used by
// the notification dispatcher.
func (uc *implUseCase) RegisterPushToken(ctx context.Context, sc model.Scope, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return match.ErrEmptyToken
	}

	if err := uc.repo.UpsertPushToken(ctx, sc.UserID, token); err != nil {
		uc.l.Errorf(ctx, "match.usecase.RegisterPushToken: %v", err)
		return err
	}
	uc.tokens.Add(sc.UserID, token)
	return nil
}
