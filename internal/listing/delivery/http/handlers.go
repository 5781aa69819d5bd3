package http

import (
	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/middleware"
	"wishlist-matching/pkg/response"
)

// Create godoc
// @Summary     Publish a listing
// @Description Publishes a garage-sale listing and schedules it for wishlist matching.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Listing data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     Browse listings
// @Description Returns published listings, newest first.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category tag"
// @Param       limit    query int    false "Page size (default: 20)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get listing detail
// @Description Returns a single listing by ID.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
