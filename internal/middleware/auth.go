// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"humanness-tasks/pkg/auth"
	"humanness-tasks/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing session data
const (
	SessionIDKey = "sessionID"
)

// TokenQueryParam carries the token for clients that cannot set headers,
// such as browser EventSource streams.
const TokenQueryParam = "token"

// Auth returns a middleware that validates session tokens.
func Auth(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Handlers load the flow session by this ID
		c.Set(SessionIDKey, claims.SessionID)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if token := c.Query(TokenQueryParam); token != "" {
			return token, true
		}
		response.Unauthorized(c, "missing authorization header")
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		response.Unauthorized(c, "invalid authorization header format")
		return "", false
	}
	return parts[1], true
}

// GetSessionID retrieves the session ID from the context.
// Returns empty string if not found.
func GetSessionID(c *gin.Context) string {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return ""
	}
	id, _ := sessionID.(string)
	return id
}
