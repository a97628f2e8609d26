package middleware

import (
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/constants"
)

// CurrentUser resolves the caller from the X-Current-User-ID header, falling
// back to the user remembered in the session. It never rejects a request:
// identity is caller-supplied and only feeds the unread-posts flag.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := parseUserID(c.GetHeader(constants.HeaderCurrentUserID)); ok {
			c.Set(constants.ContextKeyUserID, userID)
		} else if userID, ok := sessionUserID(c); ok {
			c.Set(constants.ContextKeyUserID, userID)
		}

		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserIDPtr is GetUserID as an optional value
func GetUserIDPtr(c *gin.Context) *uint64 {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}
	return &userID
}

func sessionUserID(c *gin.Context) (uint64, bool) {
	// Sessions are optional; without the middleware there is nothing to read
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return 0, false
	}

	switch v := sessions.Default(c).Get(constants.SessionKeyUserID).(type) {
	case uint64:
		return v, v != 0
	case int64:
		return uint64(v), v > 0
	default:
		return 0, false
	}
}

// parseUserID accepts positive decimal ids only.
func parseUserID(value string) (uint64, bool) {
	if value == "" {
		return 0, false
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil || userID == 0 {
		return 0, false
	}
	return userID, true
}
