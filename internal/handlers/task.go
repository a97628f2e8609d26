package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-board-api/internal/errors"
	"github.com/yukikurage/project-board-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
	aiService   *services.AIService
}

// NewTaskHandler creates a new TaskHandler. aiService may be nil when no
// OpenAI key is configured.
func NewTaskHandler(taskService *services.TaskService, aiService *services.AIService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		aiService:   aiService,
	}
}

// AddTask creates a blank task in the project given by :id
func (h *TaskHandler) AddTask(c *gin.Context) {
	projectID, found := pathID(c)
	if !found {
		return
	}

	id, err := h.taskService.AddTask(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	success(c, http.StatusCreated, gin.H{"task_id": id})
}

// UpdateTask applies a partial update of progress, content and deadline
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	// Parse raw JSON to detect which fields were sent
	patch, valid := bindPatch(c)
	if !valid {
		return
	}

	var input services.UpdateTaskInput
	if input.Progress, valid = nonNullInt(c, patch, "progress"); !valid {
		return
	}
	if input.Content, valid = nonNull[string](c, patch, "content"); !valid {
		return
	}

	// deadline was provided (might be null)
	var deadline string
	present, null, err := patch.field("deadline", &deadline)
	if err != nil {
		apierrors.InvalidField(c, "deadline", err.Error())
		return
	}
	if present {
		if null {
			input.ClearDeadline = true
		} else {
			input.Deadline = &deadline
		}
	}

	if err := h.taskService.UpdateTask(c.Request.Context(), id, input); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, found := pathID(c)
	if !found {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c)
}

// SuggestTasks asks the AI service to split free text into task suggestions
// for the project given by :id. Suggestions are not saved.
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	projectID, found := pathID(c)
	if !found {
		return
	}

	var req struct {
		Text *string `json:"text"`
	}
	if !bindBody(c, &req) {
		return
	}

	suggestions, err := h.aiService.SuggestTasks(c.Request.Context(), projectID, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
