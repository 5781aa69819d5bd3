package http

import (
	"time"

	"wishlist-matching/internal/model"
	"wishlist-matching/internal/wishlist"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Category    string `json:"category"    binding:"max=64"`
}

func (r createReq) toInput() wishlist.CreateItemInput {
	return wishlist.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
	}
}

// ---

type listReq struct {
	ActiveOnly bool `form:"active_only"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

func (r listReq) toInput() wishlist.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return wishlist.ListItemsInput{
		ActiveOnly: r.ActiveOnly,
		Limit:      limit,
		Offset:     offset,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Name        string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Category    string `json:"category"    binding:"omitempty,max=64"`
}

func (r updateReq) toInput() wishlist.UpdateItemInput {
	return wishlist.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResp(item model.WishlistItem) itemResp {
	return itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Active:      item.Active,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out wishlist.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out wishlist.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items: items,
		Total: out.Total,
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out wishlist.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out wishlist.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}
