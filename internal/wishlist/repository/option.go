package repository

// CreateItemOptions holds the parameters for inserting a wishlist item.
type CreateItemOptions struct {
	OwnerID     string
	Name        string
	Description string
	Category    string
}

// GetOneItemOptions holds filters for GetOneItem. All non-empty fields
// are applied as AND conditions.
type GetOneItemOptions struct {
	ID      string
	OwnerID string
}

// ListItemsOptions holds the parameters for listing wishlist items.
type ListItemsOptions struct {
	OwnerID    string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// UpdateItemOptions holds the parameters for a partial update. Empty
// fields are left unchanged.
type UpdateItemOptions struct {
	ID          string
	Name        string
	Description string
	Category    string
}
