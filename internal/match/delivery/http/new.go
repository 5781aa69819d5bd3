package http

import (
	"wishlist-matching/internal/listing"
	"wishlist-matching/internal/match"
	"wishlist-matching/pkg/log"
)

type handler struct {
	l         log.Logger
	uc        match.UseCase
	listingUC listing.UseCase
}

// New creates a new HTTP handler for the match domain. listingUC is
// used by the internal reprocess route to load the target listing.
func New(l log.Logger, uc match.UseCase, listingUC listing.UseCase) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		listingUC: listingUC,
	}
}
