package middleware

import (
	"net/http"

	"github.com/farmstore/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SessionIDHeader carries the client-chosen session identifier that keys
// supply and sale drafts.
const SessionIDHeader = "X-Session-ID"

const sessionIDKey = "session_id"

const maxSessionIDLength = 128

// RequireSessionID extracts the session ID header and rejects requests
// without one. Draft endpoints cannot operate without a session.
func RequireSessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionIDHeader)
		if sessionID == "" || len(sessionID) > maxSessionIDLength {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Missing or invalid X-Session-ID header"))
			return
		}
		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session ID set by RequireSessionID
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
