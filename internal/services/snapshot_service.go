package services

import (
	"context"

	"github.com/yukikurage/project-board-api/internal/dto"
	"github.com/yukikurage/project-board-api/internal/repository"
)

// SnapshotService assembles the consolidated read model
type SnapshotService struct {
	snapshotRepo repository.SnapshotRepository
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(snapshotRepo repository.SnapshotRepository) *SnapshotService {
	return &SnapshotService{snapshotRepo: snapshotRepo}
}

// GetSnapshot returns users, projects with tasks and comments, and posts.
// HasNewPosts is false when callerID is nil. It never writes.
func (s *SnapshotService) GetSnapshot(ctx context.Context, callerID *uint64) (*dto.SnapshotDTO, error) {
	rows, err := s.snapshotRepo.Load(ctx, callerID)
	if err != nil {
		return nil, storageError("load snapshot", err)
	}

	snapshot := dto.ToSnapshotDTO(rows.Users, rows.Projects, rows.Tasks, rows.Comments, rows.Posts, rows.HasNewPosts)
	return &snapshot, nil
}
