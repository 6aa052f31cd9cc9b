package middleware

import (
	"net/http"
	"strings"
	"time"

	"shelf-life/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the Bearer token into a user id stored in the
// gin context under "user_id". Requests with a missing, malformed or
// unverifiable token are rejected with 401.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Missing or invalid Authorization header")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    http.StatusUnauthorized,
		"error":     http.StatusText(http.StatusUnauthorized),
		"message":   message,
		"path":      c.Request.URL.Path,
	})
}
