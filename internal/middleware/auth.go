package middleware

import (
	"net/http"
	"strings"

	"shorelux/config"
	"shorelux/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the JWT and sets staff_id, username and role in the
// request context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("staff_id", claims.StaffID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// GetStaffID returns the authenticated staff ID from context (must be used
// after AuthRequired).
func GetStaffID(c *gin.Context) uint {
	v, _ := c.Get("staff_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
