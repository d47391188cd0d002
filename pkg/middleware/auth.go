package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourgether/pkg/utils"
)

const AnonymousUserID = "anonymous"

// OptionalAuthMiddleware resolves a user id from a bearer token when one is
// present and valid, and continues anonymously otherwise. Itinerary
// generation works the same either way; the id only feeds request logs.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", AnonymousUserID)

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
			}
		}

		c.Next()
	}
}

// RequireAuthMiddleware guards operator routes such as catalog import.
func RequireAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
