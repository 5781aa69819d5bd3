package match

import (
	"context"

	"wishlist-matching/internal/matching"
	"wishlist-matching/internal/model"
)

// UseCase defines the business logic interface for the match domain:
// running the pipeline, dispatching notifications, and reading match
// history.
type UseCase interface {
	// ProcessListing evaluates every active wishlist item against the
	// listing and persists positive verdicts exactly once per pair.
	// Newly created matches get a best-effort immediate notification.
	// Persistence failures are returned; verifier and push failures
	// are not.
	ProcessListing(ctx context.Context, listing model.Listing) error

	// Notify dispatches the notification for one match. It is a no-op
	// when the notification was already sent, and leaves the match
	// retryable when the owner has no push target or the send fails.
	Notify(ctx context.Context, matchID string) error

	// SweepUnsent re-dispatches notifications for matched-but-unsent
	// rows. Safe to run repeatedly.
	SweepUnsent(ctx context.Context) (SweepOutput, error)

	// ListByOwner returns matches for the scoped user's wishlist items.
	ListByOwner(ctx context.Context, sc model.Scope, input ListMatchesInput) (ListMatchesOutput, error)

	// RegisterPushToken stores the scoped user's device push token.
	RegisterPushToken(ctx context.Context, sc model.Scope, token string) error
}

// Decider produces a verdict for one (wishlist item, listing) pair.
// Satisfied by matching.Engine.
type Decider interface {
	Decide(ctx context.Context, item model.WishlistItem, listing model.Listing) matching.Verdict
}
