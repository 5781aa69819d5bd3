package middleware

import (
	"github.com/gin-gonic/gin"

	"wishlist-matching/internal/model"
	"wishlist-matching/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the caller identity. The service sits behind the
// platform gateway, which authenticates sessions and forwards the user
// id in X-User-ID.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// Internal guards service-to-service routes (listing ingestion, sweep
// triggers) with a shared key.
func (m Middleware) Internal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" || c.GetHeader("X-Internal-Key") != m.internalKey {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetScope extracts the caller scope set by Auth.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
