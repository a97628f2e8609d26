package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-board-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCreatePost is returned when inserting the post row fails.
	ErrCreatePost = errors.New("post repository: create post failed")
	// ErrMarkAuthorRead is returned when recording the author's own read marker fails.
	ErrMarkAuthorRead = errors.New("post repository: mark post read for author failed")
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a post and its author's read marker atomically
func (r *GormPostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreatePost, err)
		}

		status := models.PostReadStatus{UserID: post.UserID, PostID: post.ID}
		if err := tx.Clauses(readStatusOnConflict).Create(&status).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrMarkAuthorRead, err)
		}

		return nil
	})
}

// Update replaces a post's title and content
func (r *GormPostRepository) Update(ctx context.Context, id uint64, title, content string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		}).Error
	})
}

// Delete deletes a post
func (r *GormPostRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Post{}, id).Error
	})
}

// readStatusOnConflict turns read-marker inserts into insert-if-absent.
var readStatusOnConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
	DoNothing: true,
}
