package matching

import (
	"context"
	"strings"

	"wishlist-matching/internal/model"
	pkgLog "wishlist-matching/pkg/log"
	"wishlist-matching/pkg/verifier"
)

// Engine runs the tiered decision cascade for a single
// (wishlist item, listing) pair. Cheap deterministic signals are
// checked first; the semantic verifier is only consulted for
// ambiguous cases, and its failures always degrade to the
// next-weakest deterministic verdict.
type Engine struct {
	stopwords map[string]struct{}
	verifier  verifier.Verifier
	l         pkgLog.Logger
}

// NewEngine creates a decision Engine. The verifier may be nil, in
// which case every escalation behaves as if verification failed.
func NewEngine(cfg Config, v verifier.Verifier, l pkgLog.Logger) *Engine {
	return &Engine{
		stopwords: StopwordSet(cfg.Stopwords),
		verifier:  v,
		l:         l,
	}
}

// Decide evaluates the rule cascade top-down with short-circuit:
//
//  1. Strong lexical signal (>= 2 keyword hits, or one hit longer
//     than 6 chars) -> high confidence, no verifier call.
//  2. Category match plus at least one keyword hit -> verifier;
//     verified on success, medium category fallback otherwise.
//  3. Exactly one keyword hit -> verifier; verified on success,
//     no match otherwise.
//  4. No match.
func (e *Engine) Decide(ctx context.Context, item model.WishlistItem, listing model.Listing) Verdict {
	itemText := strings.TrimSpace(item.Name + " " + item.Description)
	listingText := listing.Title + " " + listing.Description

	keywords := ExtractKeywords(itemText, e.stopwords)
	hits := LexicalMatches(keywords, listingText)

	// Rule 1: strong lexical signal, cheapest path.
	if len(hits) >= 2 || anyLongerThan(hits, 6) {
		return Verdict{
			IsMatch:    true,
			Confidence: model.ConfidenceHigh,
			Reason:     "Keyword match: " + strings.Join(hits, ", "),
		}
	}

	// Rule 2: category agreement with thin lexical support.
	if CategoryMatches(item.Category, listing.Categories) && len(hits) >= 1 {
		if result, ok := e.verify(ctx, item, listing); ok && result.IsMatch {
			return Verdict{
				IsMatch:    true,
				Confidence: model.ConfidenceVerified,
				Reason:     "AI verified: " + result.Reason,
			}
		}

		reason := "Category match: " + item.Category
		if len(hits) > 0 {
			reason += ", partial keyword: " + hits[0]
		}
		return Verdict{
			IsMatch:    true,
			Confidence: model.ConfidenceMedium,
			Reason:     reason,
		}
	}

	// Rule 3: a single weak keyword hit, worth one verifier call.
	if len(hits) == 1 {
		if result, ok := e.verify(ctx, item, listing); ok && result.IsMatch {
			return Verdict{
				IsMatch:    true,
				Confidence: model.ConfidenceVerified,
				Reason:     "AI verified: " + result.Reason,
			}
		}
	}

	return Verdict{
		IsMatch:    false,
		Confidence: model.ConfidenceMedium,
		Reason:     ReasonNoMatch,
	}
}

// verify consults the semantic verifier. ok=false means no additional
// signal: missing verifier, call failure, or timeout. Errors are never
// propagated to the caller.
func (e *Engine) verify(ctx context.Context, item model.WishlistItem, listing model.Listing) (verifier.Result, bool) {
	if e.verifier == nil {
		return verifier.Result{}, false
	}

	result, err := e.verifier.Verify(ctx, verifier.Request{
		ItemName:           item.Name,
		ItemDescription:    item.Description,
		ItemCategory:       item.Category,
		ListingTitle:       listing.Title,
		ListingDescription: listing.Description,
		ListingCategories:  listing.Categories,
	})
	if err != nil {
		e.l.Warnf(ctx, "matching: verifier unavailable for item=%s listing=%s: %v", item.ID, listing.ID, err)
		return verifier.Result{}, false
	}
	return result, true
}

func anyLongerThan(tokens []string, n int) bool {
	for _, t := range tokens {
		if len(t) > n {
			return true
		}
	}
	return false
}
