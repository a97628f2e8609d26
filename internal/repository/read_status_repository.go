package repository

import (
	"context"

	"github.com/yukikurage/project-board-api/internal/models"
	"gorm.io/gorm"
)

// GormReadStatusRepository is a GORM implementation of ReadStatusRepository
type GormReadStatusRepository struct {
	db *gorm.DB
}

// NewReadStatusRepository creates a new ReadStatusRepository
func NewReadStatusRepository(db *gorm.DB) ReadStatusRepository {
	return &GormReadStatusRepository{db: db}
}

// MarkAllAsRead records a read marker for each post the user has not read
func (r *GormReadStatusRepository) MarkAllAsRead(ctx context.Context, userID uint64) (int64, error) {
	var inserted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint64
		if err := tx.Model(&models.Post{}).
			Where("id NOT IN (?)", readPostIDs(tx, userID)).
			Order("id").
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if len(postIDs) == 0 {
			return nil
		}

		statuses := make([]models.PostReadStatus, len(postIDs))
		for i, postID := range postIDs {
			statuses[i] = models.PostReadStatus{UserID: userID, PostID: postID}
		}

		result := tx.Clauses(readStatusOnConflict).Create(&statuses)
		if result.Error != nil {
			return result.Error
		}

		inserted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// countUnread counts posts by other authors with no read marker for the user
func countUnread(db *gorm.DB, userID uint64) (int64, error) {
	var count int64
	err := db.Model(&models.Post{}).
		Where("user_id <> ?", userID).
		Where("id NOT IN (?)", readPostIDs(db, userID)).
		Count(&count).Error
	return count, err
}

// readPostIDs is the subquery of post ids the user has already read.
func readPostIDs(db *gorm.DB, userID uint64) *gorm.DB {
	return db.Model(&models.PostReadStatus{}).Select("post_id").Where("user_id = ?", userID)
}
