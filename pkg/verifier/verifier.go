package verifier

import "context"

// Verifier is the semantic verification capability: given a wishlist
// item and a listing, judge whether they refer to the same kind of
// item. Implementations are external and fallible; callers must treat
// any error as "no additional signal" and fall back to their own
// deterministic verdict.
type Verifier interface {
	Verify(ctx context.Context, req Request) (Result, error)
}

// Request carries the two text blobs to compare.
type Request struct {
	ItemName        string
	ItemDescription string
	ItemCategory    string

	ListingTitle       string
	ListingDescription string
	ListingCategories  []string
}

// Result is the verifier's judgment.
type Result struct {
	IsMatch bool   `json:"is_match"`
	Reason  string `json:"reason"`
}
