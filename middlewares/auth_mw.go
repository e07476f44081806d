package middlewares

import (
	"net/http"

	"github.com/akber360/QA-Cinema/utils"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "userId"
	ContextUsername = "username"

	SessionCookie = "session"
)

// SessionRequired rejects requests without a valid session cookie and
// exposes the bound identity through the request context.
func SessionRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to do that"})
			return
		}

		claims, err := utils.ValidateSessionToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// SessionOptional exposes the identity when a valid cookie is present and
// lets the request through either way.
func SessionOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, err := c.Cookie(SessionCookie); err == nil {
			if claims, err := utils.ValidateSessionToken(secret, tokenStr); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextUsername, claims.Username)
			}
		}
		c.Next()
	}
}
