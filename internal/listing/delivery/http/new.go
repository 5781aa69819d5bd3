package http

import (
	"wishlist-matching/internal/listing"
	"wishlist-matching/pkg/log"
)

type handler struct {
	l  log.Logger
	uc listing.UseCase
}

// New creates a new HTTP handler for the listing domain.
func New(l log.Logger, uc listing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
