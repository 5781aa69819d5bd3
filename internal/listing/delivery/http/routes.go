package http

import (
	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), h.Create)
	rg.GET("", mw.Auth(), h.List)
	rg.GET("/:id", mw.Auth(), h.Detail)
}
