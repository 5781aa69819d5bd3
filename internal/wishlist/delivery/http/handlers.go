package http

import (
	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/middleware"
	"wishlist-matching/pkg/response"
)

// Create godoc
// @Summary     Add a wishlist item
// @Description Adds a wanted-item description for the authenticated user.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist/items [POST]
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
// @Summary     List wishlist items
// @Description Returns the authenticated user's wishlist items.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       active_only query bool false "Only active items"
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist/items [GET]
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
// @Summary     Get wishlist item detail
// @Description Returns a single wishlist item owned by the caller.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist/items/{id} [GET]
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

// Update godoc
// @Summary     Update a wishlist item
// @Description Partially updates an item owned by the caller.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Remove a wishlist item
// @Description Soft-deactivates an item owned by the caller. Match history is kept.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
