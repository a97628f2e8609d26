package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/services"
)

// UserHandler handles user endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userRequest struct {
	Name *string `json:"name"`
}

// AddUser creates a user
func (h *UserHandler) AddUser(c *gin.Context) {
	var req userRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.userService.AddUser(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	success(c, http.StatusCreated, gin.H{"id": id})
}

// UpdateUser renames a user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	var req userRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.userService.RenameUser(c.Request.Context(), id, req.Name); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// DeleteUser deletes a user
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}
