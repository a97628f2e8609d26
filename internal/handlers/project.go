package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/services"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// AddProject creates a project with an optional initial task list
func (h *ProjectHandler) AddProject(c *gin.Context) {
	type TaskRequest struct {
		Content  *string `json:"content"`
		Deadline *string `json:"deadline"`
	}
	type AddProjectRequest struct {
		Name      *string       `json:"name"`
		UserID    *uint64       `json:"user_id"`
		StartDate *string       `json:"start_date"`
		Deadline  *string       `json:"deadline"`
		Priority  *int          `json:"priority"`
		Tasks     []TaskRequest `json:"tasks"`
	}

	var req AddProjectRequest
	if !bindBody(c, &req) {
		return
	}

	input := services.AddProjectInput{
		Name:      req.Name,
		UserID:    req.UserID,
		StartDate: req.StartDate,
		Deadline:  req.Deadline,
		Priority:  req.Priority,
		Tasks:     make([]services.NewTaskInput, len(req.Tasks)),
	}
	for i, task := range req.Tasks {
		input.Tasks[i] = services.NewTaskInput{Content: task.Content, Deadline: task.Deadline}
	}

	id, err := h.projectService.AddProject(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	success(c, http.StatusCreated, gin.H{"project_id": id})
}

// UpdateProjectStatus sets a project's status
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	var req struct {
		Status *string `json:"status"`
	}
	if !bindBody(c, &req) {
		return
	}

	if err := h.projectService.UpdateProjectStatus(c.Request.Context(), id, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// UpdateProject applies a partial update of progress, priority and name
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	// Parse raw JSON to detect which fields were sent
	patch, valid := bindPatch(c)
	if !valid {
		return
	}

	var input services.UpdateProjectInput
	if input.Progress, valid = nonNullInt(c, patch, "progress"); !valid {
		return
	}
	if input.Priority, valid = nonNullInt(c, patch, "priority"); !valid {
		return
	}
	if input.Name, valid = nonNull[string](c, patch, "name"); !valid {
		return
	}

	if err := h.projectService.UpdateProject(c.Request.Context(), id, input); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// DeleteProject deletes a project with its tasks and comments
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}
