package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/middleware"
	"github.com/yukikurage/project-board-api/internal/services"
)

// DataHandler serves the consolidated snapshot
type DataHandler struct {
	snapshotService *services.SnapshotService
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(snapshotService *services.SnapshotService) *DataHandler {
	return &DataHandler{snapshotService: snapshotService}
}

// GetData returns users, projects with tasks and comments, posts and the
// caller's unread flag
func (h *DataHandler) GetData(c *gin.Context) {
	snapshot, err := h.snapshotService.GetSnapshot(c.Request.Context(), middleware.GetUserIDPtr(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
