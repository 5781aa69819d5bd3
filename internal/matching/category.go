package matching

// CategoryMatches reports whether the wishlist category is non-empty
// and a member of the listing's category set.
func CategoryMatches(category string, listingCategories []string) bool {
	if category == "" {
		return false
	}
	for _, c := range listingCategories {
		if c == category {
			return true
		}
	}
	return false
}
