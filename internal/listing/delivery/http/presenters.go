package http

import (
	"time"

	"wishlist-matching/internal/listing"
	"wishlist-matching/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Categories  []string `json:"categories"  binding:"max=9"`
	Location    string   `json:"location"    binding:"max=255"`
}

func (r createReq) toInput() listing.CreateListingInput {
	return listing.CreateListingInput{
		Title:       r.Title,
		Description: r.Description,
		Categories:  r.Categories,
		Location:    r.Location,
	}
}

// ---

type listReq struct {
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() listing.ListListingsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return listing.ListListingsInput{
		Category: r.Category,
		Limit:    limit,
		Offset:   offset,
	}
}

// --- Response DTOs ---

type listingResp struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newListingResp(l model.Listing) listingResp {
	return listingResp{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Title:       l.Title,
		Description: l.Description,
		Categories:  l.Categories,
		Location:    l.Location,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type createResp struct {
	Listing listingResp `json:"listing"`
}

func (h *handler) newCreateResp(out listing.CreateListingOutput) createResp {
	return createResp{Listing: newListingResp(out.Listing)}
}

type listResp struct {
	Listings []listingResp `json:"listings"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out listing.ListListingsOutput) listResp {
	listings := make([]listingResp, len(out.Listings))
	for i, l := range out.Listings {
		listings[i] = newListingResp(l)
	}
	return listResp{
		Listings: listings,
		Total:    out.Total,
	}
}

type detailResp struct {
	Listing listingResp `json:"listing"`
}

func (h *handler) newDetailResp(out listing.DetailListingOutput) detailResp {
	return detailResp{Listing: newListingResp(out.Listing)}
}
