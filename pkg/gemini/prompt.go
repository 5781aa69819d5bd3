package gemini

import (
	"fmt"
	"strings"
)

// MatchVerificationSystemPrompt is the system instruction sent to
// Gemini to judge whether a listing is relevant to a wishlist item.
const MatchVerificationSystemPrompt = `You are a matching assistant for a garage-sale app. Your job is to decide whether a published sale listing is likely to contain the item a user is looking for.

RULES:
1. Compare the WANTED ITEM against the LISTING on meaning, not exact wording. "Couch" matches "sofa", "record player" matches "turntable".
2. Only answer yes when a reasonable person would say the listing likely offers that kind of item. Vague or generic listings ("lots of stuff", "household items") are NOT a match unless the wanted item is named.
3. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text outside the JSON.
4. The JSON object has exactly two fields:
   - is_match: boolean
   - reason: one short sentence (max 120 characters) explaining the judgment, written for the end user

EXAMPLE INPUT:
WANTED ITEM: vintage record player, working condition preferred
LISTING: Moving sale! Old turntable, vinyl records, and speakers. (categories: electronics)

EXAMPLE OUTPUT:
{"is_match": true, "reason": "The turntable in this sale is a record player like the one you want"}

Now judge the following and return ONLY the JSON object:`

// BuildMatchVerificationPrompt builds the full verification prompt for
// a (wishlist item, listing) pair.
func BuildMatchVerificationPrompt(itemText, listingText string, listingCategories []string) string {
	var sb strings.Builder
	sb.WriteString(MatchVerificationSystemPrompt)
	sb.WriteString("\n\nWANTED ITEM: ")
	sb.WriteString(itemText)
	sb.WriteString("\nLISTING: ")
	sb.WriteString(listingText)
	if len(listingCategories) > 0 {
		sb.WriteString(fmt.Sprintf(" (categories: %s)", strings.Join(listingCategories, ", ")))
	}
	return sb.String()
}
