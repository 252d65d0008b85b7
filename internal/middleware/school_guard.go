package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SchoolGuard returns middleware that ensures school context is present.
// It relies on AuthMiddleware having already set the school_id.
func SchoolGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get(ContextKeySchoolID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "school context required"},
			})
			return
		}
		c.Next()
	}
}
