package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board-api/internal/config"
	"github.com/yukikurage/project-board-api/internal/database"
	"github.com/yukikurage/project-board-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with foreign keys enabled
// and the full schema migrated. The connection is closed on test cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(config.SQLiteDSN(":memory:")), logger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would otherwise get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))

	return db
}

// CreateUser inserts a user row directly.
func CreateUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{Name: name}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateProject inserts a project row directly.
func CreateProject(t *testing.T, db *gorm.DB, name string, ownerID *uint64, status string, priority int, deadline string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:      name,
		UserID:    ownerID,
		StartDate: "2024-01-01",
		Deadline:  deadline,
		Priority:  priority,
		Status:    status,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

// CreatePost inserts a post row directly, without marking it read.
func CreatePost(t *testing.T, db *gorm.DB, title string, authorID uint64) *models.Post {
	t.Helper()

	post := &models.Post{Title: title, Content: title + " body", UserID: authorID}
	require.NoError(t, db.Create(post).Error)
	return post
}
