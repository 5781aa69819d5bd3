package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/wishlist"
	"wishlist-matching/pkg/response"
)

var errIDRequired = errors.New("id is required")

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wishlist.ErrEmptyName),
		errors.Is(err, wishlist.ErrInvalidCategory):
		response.BadRequest(c, err)
	case errors.Is(err, wishlist.ErrItemNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c)
	}
}
