package match

import "wishlist-matching/internal/model"

// MatchDetail is a match joined with the names a user needs to make
// sense of it.
type MatchDetail struct {
	Match        model.Match
	ItemName     string
	ListingTitle string
}

// ListMatchesInput is the input for listing the caller's matches.
type ListMatchesInput struct {
	UnsentOnly bool
	Limit      int
	Offset     int
}

// ListMatchesOutput is the result of listing matches.
type ListMatchesOutput struct {
	Matches []MatchDetail
	Total   int
}

// SweepOutput summarizes one retry sweep over unsent notifications.
type SweepOutput struct {
	Scanned int
	Sent    int
}
