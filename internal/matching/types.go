package matching

import "wishlist-matching/internal/model"

// Verdict is the outcome of running the decision cascade for one
// (wishlist item, listing) pair.
type Verdict struct {
	IsMatch    bool
	Confidence model.Confidence
	Reason     string
}

// Config holds the immutable matching configuration, loaded once at
// process start and passed in explicitly.
type Config struct {
	// Stopwords replaces the default stopword set when non-empty.
	Stopwords []string
}

// ReasonNoMatch is the sentinel reason for a negative verdict. It is
// never user-visible; negative verdicts are not persisted.
const ReasonNoMatch = "No match"
