package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yukikurage/project-board-api/internal/models"
	"github.com/yukikurage/project-board-api/internal/repository"
	"gorm.io/gorm"
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// AddUser creates a user and returns its id
func (s *UserService) AddUser(ctx context.Context, name *string) (uint64, error) {
	if name == nil || strings.TrimSpace(*name) == "" {
		return 0, ErrUserNameRequired
	}

	user := &models.User{Name: strings.TrimSpace(*name)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrUserNameTaken
		}
		return 0, storageError("create user", err)
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID)
	return user.ID, nil
}

// RenameUser changes a user's display name. Renaming a missing user is a no-op.
func (s *UserService) RenameUser(ctx context.Context, id uint64, name *string) error {
	if name == nil || strings.TrimSpace(*name) == "" {
		return ErrUserNameRequired
	}

	if err := s.userRepo.UpdateName(ctx, id, strings.TrimSpace(*name)); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserNameTaken
		}
		return storageError("rename user", err)
	}

	return nil
}

// DeleteUser deletes a user, leaving their projects without an owner
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return storageError("delete user", err)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}
