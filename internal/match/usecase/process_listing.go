package usecase

import (
	"context"
	"sync"

	"wishlist-matching/internal/match/repository"
	"wishlist-matching/internal/model"
)

// ProcessListing runs the decision engine over every active wishlist
// item and persists positive verdicts. Pairs that already have a match
// are skipped without re-invoking the engine. Evaluation is concurrent
// and bounded; the first persistence failure is returned after all
// workers finish, engine-level degradation never is.
func (uc *implUseCase) ProcessListing(ctx context.Context, listing model.Listing) error {
	items, err := uc.items.ListActiveItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "match.usecase.ProcessListing: list items: %v", err)
		return err
	}

	matchedIDs, err := uc.repo.ListMatchedItemIDs(ctx, listing.ID)
	if err != nil {
		uc.l.Errorf(ctx, "match.usecase.ProcessListing: list matched: %v", err)
		return err
	}
	matched := make(map[string]struct{}, len(matchedIDs))
	for _, id := range matchedIDs {
		matched[id] = struct{}{}
	}

	var (
		wg       sync.WaitGroup
		sem      = make(chan struct{}, uc.workers)
		mu       sync.Mutex
		firstErr error
	)

	for _, item := range items {
		if item.OwnerID == listing.OwnerID {
			continue // never match a seller against their own listing
		}
		if _, ok := matched[item.ID]; ok {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(item model.WishlistItem) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := uc.evaluatePair(ctx, item, listing); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(item)
	}
	wg.Wait()

	return firstErr
}

// evaluatePair decides one (item, listing) pair and persists a
// positive verdict. Only persistence failures are returned.
func (uc *implUseCase) evaluatePair(ctx context.Context, item model.WishlistItem, listing model.Listing) error {
	verdict := uc.engine.Decide(ctx, item, listing)
	if !verdict.IsMatch {
		return nil
	}

	m, created, err := uc.repo.CreateIfAbsent(ctx, repository.CreateMatchOptions{
		WishlistItemID: item.ID,
		ListingID:      listing.ID,
		Confidence:     verdict.Confidence,
		Reason:         verdict.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "match.usecase.evaluatePair: persist item=%s listing=%s: %v", item.ID, listing.ID, err)
		return err
	}
	if !created {
		return nil
	}

	uc.l.Infof(ctx, "match.usecase: matched item=%s listing=%s confidence=%s", item.ID, listing.ID, m.Confidence)

	// Best-effort immediate dispatch. The sweep retries anything that
	// fails here.
	if err := uc.Notify(ctx, m.ID); err != nil {
		uc.l.Warnf(ctx, "match.usecase.evaluatePair: notify match=%s: %v", m.ID, err)
	}
	return nil
}
