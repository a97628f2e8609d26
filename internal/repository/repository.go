package repository

import (
	"context"

	"github.com/yukikurage/project-board-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// UpdateName renames a user; a missing id is a no-op
	UpdateName(ctx context.Context, id uint64, name string) error

	// Delete detaches the user from owned projects, then deletes the user row.
	// Posts and read statuses go with it through cascade.
	Delete(ctx context.Context, id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithTasks creates a project and its initial tasks atomically
	CreateWithTasks(ctx context.Context, project *models.Project, tasks []models.Task) error

	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uint64) (*models.Project, error)

	// Update applies a sparse set of column updates; an empty set is a no-op
	Update(ctx context.Context, id uint64, fields map[string]any) error

	// Delete removes the project's comments and tasks, then the project
	Delete(ctx context.Context, id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// Update applies a sparse set of column updates; an empty set is a no-op
	Update(ctx context.Context, id uint64, fields map[string]any) error

	// Delete deletes a task
	Delete(ctx context.Context, id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// UpdateContent replaces a comment's content
	UpdateContent(ctx context.Context, id uint64, content string) error

	// Delete deletes a comment
	Delete(ctx context.Context, id uint64) error
}

// PostRepository defines the interface for board post data access
type PostRepository interface {
	// Create creates a post and marks it read for its author in one transaction
	Create(ctx context.Context, post *models.Post) error

	// Update replaces title and content and refreshes updated_at
	Update(ctx context.Context, id uint64, title, content string) error

	// Delete deletes a post and, through cascade, its read statuses
	Delete(ctx context.Context, id uint64) error
}

// ReadStatusRepository defines the interface for post read tracking
type ReadStatusRepository interface {
	// MarkAllAsRead inserts a read marker for every post the user has not read
	// yet and returns the number of markers inserted
	MarkAllAsRead(ctx context.Context, userID uint64) (int64, error)
}

// Snapshot holds every row needed to build the consolidated read model
type Snapshot struct {
	Users       []models.User
	Projects    []models.Project
	Tasks       []models.Task
	Comments    []models.Comment
	Posts       []models.Post
	HasNewPosts bool
}

// SnapshotRepository defines the interface for loading the consolidated read model
type SnapshotRepository interface {
	// Load reads all rows inside one read transaction. HasNewPosts is only
	// computed when callerID is non-nil.
	Load(ctx context.Context, callerID *uint64) (*Snapshot, error)
}
