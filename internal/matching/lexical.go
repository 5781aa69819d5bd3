package matching

import "strings"

// LexicalMatches returns the subset of keywords that occur as a
// substring of the listing text, preserving keyword order. The length
// filter is applied again defensively so callers cannot smuggle in
// short tokens.
func LexicalMatches(keywords []string, listingText string) []string {
	text := strings.ToLower(listingText)

	var hits []string
	for _, keyword := range keywords {
		if len(keyword) > 2 && strings.Contains(text, keyword) {
			hits = append(hits, keyword)
		}
	}
	return hits
}
