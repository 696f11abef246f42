package middleware

import (
	"net/http"
	"strings"

	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// HostAuth requires a valid host session token and stores the host's ID
// and email in the request context.
func HostAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		hostID, email, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("hostID", hostID)
		c.Set("hostEmail", email)
		c.Next()
	}
}

// OptionalHostAuth extracts host identity when a token is present but lets
// anonymous requests through. Booking management routes use it: invitees
// authorize with a manage token in the request instead.
func OptionalHostAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if hostID, email, err := utils.ExtractClaimsFromToken(tokenString); err == nil {
				c.Set("hostID", hostID)
				c.Set("hostEmail", email)
			}
		}
		c.Next()
	}
}
