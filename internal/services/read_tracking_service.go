package services

import (
	"context"
	"log/slog"

	"github.com/yukikurage/project-board-api/internal/repository"
)

// ReadTrackingService records which board posts a user has seen
type ReadTrackingService struct {
	readRepo repository.ReadStatusRepository
}

// NewReadTrackingService creates a new ReadTrackingService
func NewReadTrackingService(readRepo repository.ReadStatusRepository) *ReadTrackingService {
	return &ReadTrackingService{readRepo: readRepo}
}

// MarkAllAsRead marks every post read for the user. Repeated calls are no-ops.
func (s *ReadTrackingService) MarkAllAsRead(ctx context.Context, userID *uint64) (int64, error) {
	if userID == nil || *userID == 0 {
		return 0, ErrUserIDRequired
	}

	marked, err := s.readRepo.MarkAllAsRead(ctx, *userID)
	if err != nil {
		return 0, storageError("mark posts as read", err)
	}

	slog.DebugContext(ctx, "posts marked as read", "user_id", *userID, "marked", marked)
	return marked, nil
}
