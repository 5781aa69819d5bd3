package model

import "time"

// Confidence is the tier assigned to a match verdict.
type Confidence string

const (
	// ConfidenceHigh: strong lexical signal, no AI call.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium: weak or category-only signal, AI unavailable or declined.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceVerified: AI-confirmed semantic match.
	ConfidenceVerified Confidence = "verified"
)

// Match records that a listing was deemed relevant to a wishlist item.
// At most one Match exists per (WishlistItemID, ListingID) pair, ever.
// A Match is immutable evidence of the decision at matching time:
// confidence and reason are never recomputed, even if the listing
// content changes later.
type Match struct {
	ID             string
	WishlistItemID string
	ListingID      string
	MatchedAt      time.Time
	Confidence     Confidence
	Reason         string

	// NotificationSent transitions false to true exactly once, set by
	// the dispatcher after a confirmed send.
	NotificationSent   bool
	NotificationSentAt *time.Time
}
