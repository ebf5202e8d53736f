package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iumatch/coursematch-backend/internal/response"
	"github.com/iumatch/coursematch-backend/internal/service"
)

// ContextKeySessionID is the Gin context key for the swipe session ID.
const ContextKeySessionID = "session_id"

// RequireSession validates the session token from the Authorization
// header and stores the session ID on the context. WebSocket upgrade
// requests cannot send headers, so ?token= is accepted as a fallback.
func RequireSession(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		sessionID, err := tokens.Validate(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the swipe session ID from the Gin context.
func GetSessionID(c *gin.Context) string {
	val, exists := c.Get(ContextKeySessionID)
	if !exists {
		return ""
	}
	id, _ := val.(string)
	return id
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return c.Query("token")
}
