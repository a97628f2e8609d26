package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/services"
)

// CommentHandler handles project comment endpoints
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment adds a comment to the project given by :id
func (h *CommentHandler) AddComment(c *gin.Context) {
	projectID, found := pathID(c)
	if !found {
		return
	}

	var req struct {
		Author *string `json:"author"`
		Text   *string `json:"text"`
	}
	if !bindBody(c, &req) {
		return
	}

	id, err := h.commentService.AddComment(c.Request.Context(), projectID, req.Author, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	success(c, http.StatusCreated, gin.H{"comment_id": id})
}

// UpdateComment replaces a comment's content
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	var req struct {
		Content *string `json:"content"`
	}
	if !bindBody(c, &req) {
		return
	}

	if err := h.commentService.UpdateComment(c.Request.Context(), id, req.Content); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// DeleteComment deletes a comment
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}
