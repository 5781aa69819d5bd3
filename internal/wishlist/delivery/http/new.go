package http

import (
	"wishlist-matching/internal/wishlist"
	"wishlist-matching/pkg/log"
)

type handler struct {
	l  log.Logger
	uc wishlist.UseCase
}

// New creates a new HTTP handler for the wishlist domain.
func New(l log.Logger, uc wishlist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
