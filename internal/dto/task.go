package dto

import (
	"time"

	"github.com/yukikurage/project-board-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64  `json:"id"`
	ProjectID uint64  `json:"project_id"`
	Content   string  `json:"content"`
	Deadline  *string `json:"deadline"`
	Progress  int     `json:"progress"`
	IsCurrent int     `json:"is_current"`
}

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID         uint64    `json:"id"`
	ProjectID  uint64    `json:"project_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProjectDTO represents a project with its tasks and comments
type ProjectDTO struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	UserID    *uint64      `json:"user_id"`
	StartDate string       `json:"start_date"`
	Deadline  string       `json:"deadline"`
	Priority  int          `json:"priority"`
	Progress  int          `json:"progress"`
	Status    string       `json:"status"`
	Tasks     []TaskDTO    `json:"tasks"`
	Comments  []CommentDTO `json:"comments"`
}

// PostDTO represents a board post joined with its author's name
type PostDTO struct {
	ID         uint64    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	UserID     uint64    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TaskSuggestionDTO is a task proposed by the AI service; it is not persisted
type TaskSuggestionDTO struct {
	Content  string  `json:"content"`
	Deadline *string `json:"deadline"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:   user.ID,
		Name: user.Name,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		ProjectID: task.ProjectID,
		Content:   task.Content,
		Deadline:  task.Deadline,
		Progress:  task.Progress,
		IsCurrent: task.IsCurrent,
	}
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:         comment.ID,
		ProjectID:  comment.ProjectID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}
}

// ToProjectDTO converts a Project model and its children to ProjectDTO.
// Nil children encode as empty arrays.
func ToProjectDTO(project models.Project, tasks []models.Task, comments []models.Comment) ProjectDTO {
	dto := ProjectDTO{
		ID:        project.ID,
		Name:      project.Name,
		UserID:    project.UserID,
		StartDate: project.StartDate,
		Deadline:  project.Deadline,
		Priority:  project.Priority,
		Progress:  project.Progress,
		Status:    project.Status,
		Tasks:     make([]TaskDTO, len(tasks)),
		Comments:  make([]CommentDTO, len(comments)),
	}

	for i, task := range tasks {
		dto.Tasks[i] = ToTaskDTO(task)
	}
	for i, comment := range comments {
		dto.Comments[i] = ToCommentDTO(comment)
	}

	return dto
}

// ToPostDTO converts a Post model to PostDTO. The author name comes from the
// preloaded Author relation.
func ToPostDTO(post models.Post) PostDTO {
	dto := PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		UserID:    post.UserID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Author != nil {
		dto.AuthorName = post.Author.Name
	}
	return dto
}
