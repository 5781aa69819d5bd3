package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/match"
	"wishlist-matching/pkg/response"
)

var errIDRequired = errors.New("id is required")

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, match.ErrEmptyToken):
		response.BadRequest(c, err)
	case errors.Is(err, match.ErrMatchNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c)
	}
}
