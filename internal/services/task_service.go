package services

import (
	"context"

	"github.com/yukikurage/project-board-api/internal/models"
	"github.com/yukikurage/project-board-api/internal/repository"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// UpdateTaskInput represents a partial task update. ClearDeadline sets the
// deadline to null and takes precedence over Deadline.
type UpdateTaskInput struct {
	Progress      *int
	Content       *string
	Deadline      *string
	ClearDeadline bool
}

// AddTask creates a blank task in a project for inline editing
func (s *TaskService) AddTask(ctx context.Context, projectID uint64) (uint64, error) {
	task := &models.Task{ProjectID: projectID}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return 0, storageError("create task", err)
	}
	return task.ID, nil
}

// UpdateTask applies only the supplied fields among progress, content and deadline
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input UpdateTaskInput) error {
	fields := make(map[string]any)
	if input.Progress != nil {
		fields["progress"] = *input.Progress
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.ClearDeadline {
		fields["deadline"] = nil
	} else if input.Deadline != nil {
		fields["deadline"] = *input.Deadline
	}

	if err := s.taskRepo.Update(ctx, id, fields); err != nil {
		return storageError("update task", err)
	}
	return nil
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return storageError("delete task", err)
	}
	return nil
}
