package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/database"
	"github.com/kalyan0128/Humanlike-awarebot/internal/storage"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/utils"
)

// AuthMiddleware validates the bearer token, rejects revoked tokens and
// verifies the user still exists. On success the user id and claims are
// stored in the request context.
func AuthMiddleware(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		if database.IsTokenBlacklisted(claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token has been revoked"})
			c.Abort()
			return
		}

		if _, err := store.GetUser(claims.UserID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("claims", claims)
		c.Next()
	}
}

// UserID reads the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) uint {
	id, _ := c.Get("userId")
	userID, _ := id.(uint)
	return userID
}
