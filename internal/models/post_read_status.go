package models

import "time"

// PostReadStatus marks that a user has seen a post. Rows are only ever
// inserted, at most once per (user, post) pair.
type PostReadStatus struct {
	UserID uint64    `gorm:"primarykey;autoIncrement:false" json:"user_id"`
	PostID uint64    `gorm:"primarykey;autoIncrement:false" json:"post_id"`
	ReadAt time.Time `gorm:"not null;autoCreateTime" json:"read_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the singular table name used by existing databases.
func (PostReadStatus) TableName() string {
	return "post_read_status"
}
