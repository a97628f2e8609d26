package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/project-board-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateProject is returned when inserting the project row fails.
	ErrCreateProject = errors.New("project repository: create project failed")
	// ErrCreateInitialTasks is returned when inserting the initial task list fails.
	ErrCreateInitialTasks = errors.New("project repository: create initial tasks failed")
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithTasks creates a project and bulk-inserts its initial tasks
func (r *GormProjectRepository) CreateWithTasks(ctx context.Context, project *models.Project, tasks []models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateProject, err)
		}

		if len(tasks) == 0 {
			return nil
		}

		for i := range tasks {
			tasks[i].ProjectID = project.ID
		}

		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateInitialTasks, err)
		}

		return nil
	})
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update applies the given column updates to a project
func (r *GormProjectRepository) Update(ctx context.Context, id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
	})
}

// Delete deletes a project and all related data in a transaction
func (r *GormProjectRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Cascade would remove these too; deleting zero rows is fine
		if err := tx.Where("project_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}
