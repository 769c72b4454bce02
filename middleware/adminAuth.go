package middleware

import (
	"net/http"
	"strings"

	"staygrid/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the admin API. It validates the bearer
// token and stores the admin id on the context for handlers.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}

// AdminID returns the authenticated admin id from the context, empty when
// unauthenticated.
func AdminID(c *gin.Context) string {
	if v, exists := c.Get("adminID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
