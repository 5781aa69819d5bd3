package usecase

import (
	"context"
	"fmt"

	"wishlist-matching/internal/match"
	wishlistRepo "wishlist-matching/internal/wishlist/repository"
	"wishlist-matching/pkg/push"
)

// Notify dispatches the push notification for one match. The
// notification_sent flag is set only after the send is confirmed, so a
// crash mid-way can at worst duplicate a notification, never lose one.
func (uc *implUseCase) Notify(ctx context.Context, matchID string) error {
	m, err := uc.repo.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m.ID == "" {
		return match.ErrMatchNotFound
	}
	if m.NotificationSent {
		return nil // already delivered, nothing to do
	}

	item, err := uc.items.GetOneItem(ctx, wishlistRepo.GetOneItemOptions{ID: m.WishlistItemID})
	if err != nil {
		return err
	}
	listing, err := uc.listings.GetOneListing(ctx, m.ListingID)
	if err != nil {
		return err
	}
	if item.ID == "" || listing.ID == "" {
		uc.l.Warnf(ctx, "match.usecase.Notify: match %s references missing item or listing", m.ID)
		return nil
	}

	if uc.sender == nil {
		uc.l.Infof(ctx, "match.usecase.Notify: no push sender configured, match %s left unsent", m.ID)
		return nil
	}

	token, err := uc.pushToken(ctx, item.OwnerID)
	if err != nil {
		return err
	}
	if token == "" {
		// No registered device. The match stays unsent and the sweep
		// will retry once the user registers one.
		uc.l.Infof(ctx, "match.usecase.Notify: user %s has no push token, match %s left unsent", item.OwnerID, m.ID)
		return nil
	}

	msg := push.Message{
		Token: token,
		Title: fmt.Sprintf("Found: %s!", item.Name),
		Body:  fmt.Sprintf("%q may have what you're looking for!", listing.Title),
		Data: map[string]string{
			"match_id":   m.ID,
			"listing_id": listing.ID,
		},
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.l.Warnf(ctx, "match.usecase.Notify: send match=%s: %v", m.ID, err)
		return err
	}

	transitioned, err := uc.repo.MarkNotified(ctx, m.ID)
	if err != nil {
		return err
	}
	if !transitioned {
		uc.l.Debugf(ctx, "match.usecase.Notify: match %s was marked concurrently", m.ID)
	}
	return nil
}

// pushToken resolves the user's push token through the expiring cache.
// Empty results are never cached so newly registered devices are
// picked up promptly.
func (uc *implUseCase) pushToken(ctx context.Context, userID string) (string, error) {
	if token, ok := uc.tokens.Get(userID); ok {
		return token, nil
	}

	token, err := uc.repo.GetPushToken(ctx, userID)
	if err != nil {
		return "", err
	}
	if token != "" {
		uc.tokens.Add(userID, token)
	}
	return token, nil
}
