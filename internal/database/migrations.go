package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// compositeIndexes backs the snapshot's ordered reads.
var compositeIndexes = []struct {
	table   string
	name    string
	columns string
}{
	// Project list ordering
	{"projects", "idx_projects_status_priority_deadline", "status, priority, deadline"},

	// Chronological comments per project
	{"comments", "idx_comments_project_id_created_at", "project_id, created_at"},

	// Unread post lookups per user
	{"post_read_status", "idx_post_read_status_post_id", "post_id"},
}

// AddIndexes creates the composite indexes that are not declared on the models.
func AddIndexes(db *gorm.DB) error {
	for _, idx := range compositeIndexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}
