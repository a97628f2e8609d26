package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormSnapshotRepository is a GORM implementation of SnapshotRepository
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Load reads users, projects, tasks, comments and posts in one read transaction
func (r *GormSnapshotRepository) Load(ctx context.Context, callerID *uint64) (*Snapshot, error) {
	snapshot := &Snapshot{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id").Find(&snapshot.Users).Error; err != nil {
			return err
		}

		// Active, high-priority, soon-due projects first
		if err := tx.Order("status, priority, deadline, id").Find(&snapshot.Projects).Error; err != nil {
			return err
		}

		if err := tx.Order("project_id, id").Find(&snapshot.Tasks).Error; err != nil {
			return err
		}

		if err := tx.Order("created_at, id").Find(&snapshot.Comments).Error; err != nil {
			return err
		}

		// Newest first
		if err := tx.Joins("Author").
			Order("posts.created_at DESC, posts.id DESC").
			Find(&snapshot.Posts).Error; err != nil {
			return err
		}

		if callerID == nil {
			return nil
		}

		unread, err := countUnread(tx, *callerID)
		if err != nil {
			return err
		}
		snapshot.HasNewPosts = unread > 0

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
