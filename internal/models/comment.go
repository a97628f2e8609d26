package models

import "time"

// Comment belongs to a project. AuthorName is free text, not a user reference,
// so comments outlive the users who wrote them.
type Comment struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	ProjectID  uint64    `gorm:"not null;index" json:"project_id"`
	AuthorName string    `gorm:"type:varchar(255);not null" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
