package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/listing"
	"wishlist-matching/internal/middleware"
	"wishlist-matching/internal/model"
	"wishlist-matching/pkg/response"
)

// List godoc
// @Summary     List matches
// @Description Returns matches found for the authenticated user's wishlist items.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       unsent_only query bool false "Only matches with pending notifications"
// @Param       limit       query int  false "Page size (default: 20)"
// @Param       offset      query int  false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/matches [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ListByOwner(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByOwner: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newListResp(output))
}

// RegisterToken godoc
// @Summary     Register a push token
// @Description Stores the device push token used to notify the user about new matches.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       body body registerTokenReq true "Push token"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/token [POST]
func (h *handler) RegisterToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterTokenReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.RegisterPushToken(ctx, middleware.GetScope(c), req.Token); err != nil {
		h.l.Errorf(ctx, "uc.RegisterPushToken: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Process godoc
// @Summary     Reprocess a listing
// @Description Re-runs the matching pipeline for one listing. Internal use.
// @Tags        Internal
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /internal/listings/{id}/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errIDRequired)
		return
	}

	detail, err := h.listingUC.Detail(ctx, model.Scope{}, id)
	if err != nil {
		if errors.Is(err, listing.ErrListingNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "listingUC.Detail: %v", err)
		response.InternalError(c)
		return
	}

	if err := h.uc.ProcessListing(ctx, detail.Listing); err != nil {
		h.l.Errorf(ctx, "uc.ProcessListing: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Sweep godoc
// @Summary     Retry unsent notifications
// @Description Re-dispatches notifications for matched-but-unsent rows. Internal use.
// @Tags        Internal
// @Accept      json
// @Produce     json
// @Success     200 {object} sweepResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /internal/matches/sweep [POST]
func (h *handler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SweepUnsent(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.SweepUnsent: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newSweepResp(output))
}
