package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/project-board-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedUsers inserts the given user names, skipping names that already exist.
func SeedUsers(db *gorm.DB, names []string) error {
	if len(names) == 0 {
		return nil
	}

	users := make([]models.User, 0, len(names))
	for _, name := range names {
		users = append(users, models.User{Name: name})
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&users)
	if result.Error != nil {
		return fmt.Errorf("failed to seed users: %w", result.Error)
	}

	slog.Info("seed users ensured", "requested", len(names), "inserted", result.RowsAffected)
	return nil
}
