package matching

import "strings"

// defaultStopwords are articles, prepositions, and domain-generic
// noise words ("set", "sale", "garage") that carry no matching signal.
var defaultStopwords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "is", "are", "was", "were", "be", "been",
	"set", "item", "items", "sale", "garage", "various", "misc", "etc",
}

// StopwordSet builds the stopword lookup set. An empty input yields
// the default set.
func StopwordSet(words []string) map[string]struct{} {
	if len(words) == 0 {
		words = defaultStopwords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// ExtractKeywords normalizes a free-text blob into significant tokens:
// case-folded, split on whitespace, stripped of non-alphanumerics,
// with short tokens (len <= 2) and stopwords dropped. Duplicates are
// removed, first occurrence wins, input order is preserved. Pure and
// deterministic.
func ExtractKeywords(text string, stopwords map[string]struct{}) []string {
	fields := strings.Fields(strings.ToLower(text))

	seen := make(map[string]struct{}, len(fields))
	var keywords []string
	for _, raw := range fields {
		token := stripNonAlnum(raw)
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}
	return keywords
}

func stripNonAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
}
