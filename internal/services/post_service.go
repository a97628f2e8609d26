package services

import (
	"context"
	"log/slog"

	"github.com/yukikurage/project-board-api/internal/models"
	"github.com/yukikurage/project-board-api/internal/repository"
)

// PostService handles board post business logic
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// AddPostInput represents input for creating a post; every field is required
type AddPostInput struct {
	Title   *string
	Content *string
	UserID  *uint64
}

// AddPost creates a post that its author has already read
func (s *PostService) AddPost(ctx context.Context, input AddPostInput) (uint64, error) {
	if input.Title == nil {
		return 0, ErrPostTitleRequired
	}
	if input.Content == nil {
		return 0, ErrPostContentRequired
	}
	if input.UserID == nil {
		return 0, ErrUserIDRequired
	}

	post := &models.Post{
		Title:   *input.Title,
		Content: *input.Content,
		UserID:  *input.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return 0, storageError("create post", err)
	}

	slog.InfoContext(ctx, "post created", "post_id", post.ID, "user_id", post.UserID)
	return post.ID, nil
}

// UpdatePost replaces a post's title and content; both are required
func (s *PostService) UpdatePost(ctx context.Context, id uint64, title, content *string) error {
	if title == nil {
		return ErrPostTitleRequired
	}
	if content == nil {
		return ErrPostContentRequired
	}

	if err := s.postRepo.Update(ctx, id, *title, *content); err != nil {
		return storageError("update post", err)
	}
	return nil
}

// DeletePost deletes a post and its read markers
func (s *PostService) DeletePost(ctx context.Context, id uint64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return storageError("delete post", err)
	}
	return nil
}
