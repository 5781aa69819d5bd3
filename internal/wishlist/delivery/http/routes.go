package http

import (
	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All wishlist routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.Auth(), h.Create)
		items.GET("", mw.Auth(), h.List)
		items.GET("/:id", mw.Auth(), h.Detail)
		items.PUT("/:id", mw.Auth(), h.Update)
		items.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
