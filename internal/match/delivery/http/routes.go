package http

import (
	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/matches", mw.Auth(), h.List)
	rg.POST("/notifications/token", mw.Auth(), h.RegisterToken)
}

// RegisterInternalRoutes maps operator-only routes, guarded by the
// internal key.
func RegisterInternalRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/listings/:id/process", mw.Internal(), h.Process)
	rg.POST("/matches/sweep", mw.Internal(), h.Sweep)
}
