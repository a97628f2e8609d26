package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/constants"
	apierrors "github.com/yukikurage/project-board-api/internal/errors"
	"github.com/yukikurage/project-board-api/internal/services"
)

// SessionHandler remembers which user the browser last picked.
// It is a convenience for the client, not authentication.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// SetCurrentUser stores the selected user id in the session
func (h *SessionHandler) SetCurrentUser(c *gin.Context) {
	var req struct {
		UserID *uint64 `json:"user_id"`
	}
	if !bindBody(c, &req) {
		return
	}
	if req.UserID == nil || *req.UserID == 0 {
		respondServiceError(c, services.ErrUserIDRequired)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, *req.UserID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	success(c, http.StatusOK, gin.H{"user_id": *req.UserID})
}

// GetCurrentUser returns the remembered user id, or null
func (h *SessionHandler) GetCurrentUser(c *gin.Context) {
	var userID *uint64
	if v, ok := sessions.Default(c).Get(constants.SessionKeyUserID).(uint64); ok {
		userID = &v
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

// ClearCurrentUser forgets the remembered user
func (h *SessionHandler) ClearCurrentUser(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(constants.SessionKeyUserID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to clear session")
		return
	}

	respondOK(c)
}
