package services

import (
	"context"
	"log/slog"

	"github.com/yukikurage/project-board-api/internal/constants"
	"github.com/yukikurage/project-board-api/internal/models"
	"github.com/yukikurage/project-board-api/internal/repository"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// NewTaskInput represents one entry of a project's initial task list
type NewTaskInput struct {
	Content  *string
	Deadline *string
}

// AddProjectInput represents input for creating a project
type AddProjectInput struct {
	Name      *string
	UserID    *uint64
	StartDate *string
	Deadline  *string
	Priority  *int
	Tasks     []NewTaskInput
}

// UpdateProjectInput represents a partial project update; nil fields are left untouched
type UpdateProjectInput struct {
	Progress *int
	Priority *int
	Name     *string
}

// AddProject creates a project together with its initial tasks
func (s *ProjectService) AddProject(ctx context.Context, input AddProjectInput) (uint64, error) {
	if input.Name == nil {
		return 0, ErrProjectNameRequired
	}
	if input.StartDate == nil {
		return 0, ErrStartDateRequired
	}
	if input.Deadline == nil {
		return 0, ErrDeadlineRequired
	}

	priority := constants.DefaultProjectPriority
	if input.Priority != nil {
		priority = *input.Priority
	}

	tasks := make([]models.Task, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		if t.Content == nil {
			return 0, ErrTaskContentRequired
		}
		tasks = append(tasks, models.Task{Content: *t.Content, Deadline: t.Deadline})
	}

	project := &models.Project{
		Name:      *input.Name,
		UserID:    input.UserID,
		StartDate: *input.StartDate,
		Deadline:  *input.Deadline,
		Priority:  priority,
		Status:    constants.DefaultProjectStatus,
	}

	if err := s.projectRepo.CreateWithTasks(ctx, project, tasks); err != nil {
		return 0, storageError("create project", err)
	}

	slog.InfoContext(ctx, "project created", "project_id", project.ID, "tasks", len(tasks))
	return project.ID, nil
}

// UpdateProjectStatus sets a project's status
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id uint64, status *string) error {
	if status == nil {
		return ErrStatusRequired
	}

	if err := s.projectRepo.Update(ctx, id, map[string]any{"status": *status}); err != nil {
		return storageError("update project status", err)
	}
	return nil
}

// UpdateProject applies only the supplied fields among progress, priority and name
func (s *ProjectService) UpdateProject(ctx context.Context, id uint64, input UpdateProjectInput) error {
	fields := make(map[string]any)
	if input.Progress != nil {
		fields["progress"] = *input.Progress
	}
	if input.Priority != nil {
		fields["priority"] = *input.Priority
	}
	if input.Name != nil {
		fields["name"] = *input.Name
	}

	if err := s.projectRepo.Update(ctx, id, fields); err != nil {
		return storageError("update project", err)
	}
	return nil
}

// DeleteProject deletes a project with its tasks and comments
func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return storageError("delete project", err)
	}

	slog.InfoContext(ctx, "project deleted", "project_id", id)
	return nil
}
