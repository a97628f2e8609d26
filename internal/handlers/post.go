package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/services"
)

// PostHandler handles board endpoints
type PostHandler struct {
	postService         *services.PostService
	readTrackingService *services.ReadTrackingService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService, readTrackingService *services.ReadTrackingService) *PostHandler {
	return &PostHandler{
		postService:         postService,
		readTrackingService: readTrackingService,
	}
}

type postRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	UserID  *uint64 `json:"user_id"`
}

// AddPost creates a post; the author has read it already
func (h *PostHandler) AddPost(c *gin.Context) {
	var req postRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.postService.AddPost(c.Request.Context(), services.AddPostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	success(c, http.StatusCreated, gin.H{"post_id": id})
}

// UpdatePost replaces a post's title and content
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	var req postRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.postService.UpdatePost(c.Request.Context(), id, req.Title, req.Content); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// DeletePost deletes a post
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// MarkAllAsRead marks every post read for the user in the body
func (h *PostHandler) MarkAllAsRead(c *gin.Context) {
	var req struct {
		UserID *uint64 `json:"user_id"`
	}
	if !bindBody(c, &req) {
		return
	}

	marked, err := h.readTrackingService.MarkAllAsRead(c.Request.Context(), req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"marked": marked})
}
