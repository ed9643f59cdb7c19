package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nextprime-backend/services"
	"nextprime-backend/utils"
)

// AuthAdmin guards the admin API. Every failure mode answers with the same
// 401 body so callers cannot probe which part failed.
func AuthAdmin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		admin, err := auth.FindAdmin(claims.AdminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}
