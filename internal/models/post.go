package models

import "time"

type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Relations
	Author *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
