package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework

	"github.com/ubudab109/number-discussion/internal/token" // Session token verification
)

// Context keys set by Auth for downstream handlers
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// Auth validates bearer session tokens and injects the caller's identity.
// Handlers behind it must take the acting user from the context, never from
// the request body.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := tokens.Parse(tokenStr)                 // Verify the session token
		if err != nil {
			// If verification fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)     // Store userID in context
		c.Set(ContextUsernameKey, claims.Username) // Store username in context
		c.Next()                                   // Proceed to the next handler
	}
}
