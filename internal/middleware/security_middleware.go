package middleware

import (
	"net/http"
	"strings"

	"go-huerta-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the context for the handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			reject(c, http.StatusUnauthorized, "Authorization header must start with Bearer")
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			reject(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole guards a route group behind a single role. Runs after
// AuthMiddleware, which put the role in the context.
func RequireRole(allowedRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != allowedRole {
			reject(c, http.StatusForbidden, "You do not have permission to access this resource")
			return
		}
		c.Next()
	}
}

func reject(c *gin.Context, status int, message string) {
	logrus.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
	}).Warn(message)
	c.JSON(status, gin.H{"error": message})
	c.Abort()
}
