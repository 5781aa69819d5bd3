package http

import (
	"time"

	"wishlist-matching/internal/match"
)

// --- Request DTOs ---

type listReq struct {
	UnsentOnly bool `form:"unsent_only"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

func (r listReq) toInput() match.ListMatchesInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return match.ListMatchesInput{
		UnsentOnly: r.UnsentOnly,
		Limit:      limit,
		Offset:     offset,
	}
}

type registerTokenReq struct {
	Token string `json:"token" binding:"required,min=1,max=512"`
}

// --- Response DTOs ---

type matchResp struct {
	ID               string     `json:"id"`
	WishlistItemID   string     `json:"wishlist_item_id"`
	ItemName         string     `json:"item_name"`
	ListingID        string     `json:"listing_id"`
	ListingTitle     string     `json:"listing_title"`
	MatchedAt        time.Time  `json:"matched_at"`
	Confidence       string     `json:"confidence"`
	Reason           string     `json:"reason"`
	NotificationSent bool       `json:"notification_sent"`
	NotifiedAt       *time.Time `json:"notified_at,omitempty"`
}

func newMatchResp(d match.MatchDetail) matchResp {
	return matchResp{
		ID:               d.Match.ID,
		WishlistItemID:   d.Match.WishlistItemID,
		ItemName:         d.ItemName,
		ListingID:        d.Match.ListingID,
		ListingTitle:     d.ListingTitle,
		MatchedAt:        d.Match.MatchedAt,
		Confidence:       string(d.Match.Confidence),
		Reason:           d.Match.Reason,
		NotificationSent: d.Match.NotificationSent,
		NotifiedAt:       d.Match.NotificationSentAt,
	}
}

type listResp struct {
	Matches []matchResp `json:"matches"`
	Total   int         `json:"total"`
}

func (h *handler) newListResp(out match.ListMatchesOutput) listResp {
	matches := make([]matchResp, len(out.Matches))
	for i, d := range out.Matches {
		matches[i] = newMatchResp(d)
	}
	return listResp{
		Matches: matches,
		Total:   out.Total,
	}
}

type sweepResp struct {
	Scanned int `json:"scanned"`
	Sent    int `json:"sent"`
}

func (h *handler) newSweepResp(out match.SweepOutput) sweepResp {
	return sweepResp{
		Scanned: out.Scanned,
		Sent:    out.Sent,
	}
}
