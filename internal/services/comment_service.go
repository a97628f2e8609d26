package services

import (
	"context"

	"github.com/yukikurage/project-board-api/internal/models"
	"github.com/yukikurage/project-board-api/internal/repository"
)

// CommentService handles project comment business logic
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// AddComment adds a comment to a project and returns its id
func (s *CommentService) AddComment(ctx context.Context, projectID uint64, author, text *string) (uint64, error) {
	if author == nil {
		return 0, ErrCommentAuthorMissing
	}
	if text == nil {
		return 0, ErrCommentTextMissing
	}

	comment := &models.Comment{
		ProjectID:  projectID,
		AuthorName: *author,
		Content:    *text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return 0, storageError("create comment", err)
	}
	return comment.ID, nil
}

// UpdateComment replaces a comment's content
func (s *CommentService) UpdateComment(ctx context.Context, id uint64, content *string) error {
	if content == nil {
		return ErrContentRequired
	}

	if err := s.commentRepo.UpdateContent(ctx, id, *content); err != nil {
		return storageError("update comment", err)
	}
	return nil
}

// DeleteComment deletes a comment
func (s *CommentService) DeleteComment(ctx context.Context, id uint64) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return storageError("delete comment", err)
	}
	return nil
}
